package streaming

import (
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	kafkav1beta2 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/kafka/v1beta2"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const (
	clusterName = "amq-streams"

	plainListenerName   = "plain"
	plainListenerPort   = 9092
	securedListenerName = "secured"
	securedListenerPort = 9093

	plainTopicName   = "plain-messages"
	securedTopicName = "secured-messages"

	kafkaUserName = "streaming-user"

	wildflyName             = "reactive-messaging"
	streamingApplicationDir = "wildfly/microprofile-reactive-messaging-kafka"
)

// clusterCACertSecretName is where the cluster operator publishes the CA the
// secured listener serves with
func clusterCACertSecretName() string {
	return clusterName + "-cluster-ca-cert"
}

func bootstrapAddress(port int32) string {
	return fmt.Sprintf("%s-kafka-bootstrap:%d", clusterName, port)
}

// kafkaService describes a single node cluster with one plaintext listener
// and one TLS listener authenticating clients with SCRAM-SHA-512
type kafkaService struct {
	kafka  *kafkav1beta2.Kafka
	topics []*kafkav1beta2.KafkaTopic
	users  []*kafkav1beta2.KafkaUser
}

func newKafkaService() (*kafkaService, error) {
	// A single broker cannot satisfy the default replication factors
	config, err := json.Marshal(map[string]interface{}{
		"offsets.topic.replication.factor":         1,
		"transaction.state.log.replication.factor": 1,
		"transaction.state.log.min.isr":            1,
	})
	if err != nil {
		return nil, err
	}
	emptyObject := []byte("{}")

	return &kafkaService{
		kafka: &kafkav1beta2.Kafka{
			ObjectMeta: metav1.ObjectMeta{
				Name: clusterName,
			},
			Spec: kafkav1beta2.KafkaSpec{
				Kafka: kafkav1beta2.KafkaClusterSpec{
					Replicas: 1,
					Listeners: []kafkav1beta2.GenericKafkaListener{
						{
							Name: plainListenerName,
							Port: plainListenerPort,
							Type: kafkav1beta2.ListenerTypeInternal,
							TLS:  false,
						},
						{
							Name: securedListenerName,
							Port: securedListenerPort,
							Type: kafkav1beta2.ListenerTypeInternal,
							TLS:  true,
							Authentication: &kafkav1beta2.KafkaListenerAuthentication{
								Type: kafkav1beta2.ListenerAuthScramSha512,
							},
						},
					},
					Config:  &apiextensionsv1.JSON{Raw: config},
					Storage: kafkav1beta2.Storage{Type: "ephemeral"},
				},
				Zookeeper: kafkav1beta2.ZookeeperClusterSpec{
					Replicas: 1,
					Storage:  kafkav1beta2.Storage{Type: "ephemeral"},
				},
				EntityOperator: &kafkav1beta2.EntityOperatorSpec{
					TopicOperator: &apiextensionsv1.JSON{Raw: emptyObject},
					UserOperator:  &apiextensionsv1.JSON{Raw: emptyObject},
				},
			},
		},
		topics: []*kafkav1beta2.KafkaTopic{
			newTopic(plainTopicName),
			newTopic(securedTopicName),
		},
		users: []*kafkav1beta2.KafkaUser{
			{
				ObjectMeta: metav1.ObjectMeta{
					Name:   kafkaUserName,
					Labels: map[string]string{"strimzi.io/cluster": clusterName},
				},
				Spec: kafkav1beta2.KafkaUserSpec{
					Authentication: &kafkav1beta2.KafkaUserAuthentication{
						Type: kafkav1beta2.ListenerAuthScramSha512,
					},
				},
			},
		},
	}, nil
}

func newTopic(name string) *kafkav1beta2.KafkaTopic {
	return &kafkav1beta2.KafkaTopic{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: map[string]string{"strimzi.io/cluster": clusterName},
		},
		Spec: kafkav1beta2.KafkaTopicSpec{
			Partitions: 1,
			Replicas:   1,
		},
	}
}

func (s *kafkaService) Name() string {
	return s.kafka.Name
}

func (s *kafkaService) Kafka() *kafkav1beta2.Kafka {
	return s.kafka
}

func (s *kafkaService) Topics() []*kafkav1beta2.KafkaTopic {
	return s.topics
}

func (s *kafkaService) Users() []*kafkav1beta2.KafkaUser {
	return s.users
}

// wildflyStreamingApplication describes a server with the MicroProfile
// Reactive Messaging subsystem wired to both listeners: the plain connector
// over plaintext, the secured connector over TLS with SCRAM credentials read
// from the user secret the entity operator generates
type wildflyStreamingApplication struct {
	server *wildflyv1alpha1.WildFlyServer
	env    []corev1.EnvVar
}

func newWildflyStreamingApplication(replicas int32) *wildflyStreamingApplication {
	var env []corev1.EnvVar
	env = append(env,
		corev1.EnvVar{Name: "KAFKA_BOOTSTRAP_SERVERS", Value: bootstrapAddress(plainListenerPort)},
		corev1.EnvVar{Name: "KAFKA_SECURED_BOOTSTRAP_SERVERS", Value: bootstrapAddress(securedListenerPort)},
		corev1.EnvVar{Name: "KAFKA_PLAIN_TOPIC", Value: plainTopicName},
		corev1.EnvVar{Name: "KAFKA_SECURED_TOPIC", Value: securedTopicName},
		corev1.EnvVar{Name: "KAFKA_USER", Value: kafkaUserName},
		corev1.EnvVar{Name: "KAFKA_PASSWORD_FILE", Value: fmt.Sprintf("/etc/secrets/%s/password", kafkaUserName)},
		corev1.EnvVar{Name: "KAFKA_TRUSTSTORE_FILE", Value: fmt.Sprintf("/etc/secrets/%s/ca.p12", clusterCACertSecretName())},
		corev1.EnvVar{Name: "KAFKA_TRUSTSTORE_PASSWORD_FILE", Value: fmt.Sprintf("/etc/secrets/%s/ca.password", clusterCACertSecretName())},
	)
	return &wildflyStreamingApplication{
		server: &wildflyv1alpha1.WildFlyServer{
			ObjectMeta: metav1.ObjectMeta{
				Name: wildflyName,
			},
			Spec: wildflyv1alpha1.WildFlyServerSpec{
				Replicas: replicas,
				Secrets: []string{
					kafkaUserName,
					clusterCACertSecretName(),
				},
			},
		},
		env: env,
	}
}

func (a *wildflyStreamingApplication) Name() string {
	return a.server.Name
}

func (a *wildflyStreamingApplication) WildFlyServer() *wildflyv1alpha1.WildFlyServer {
	return a.server
}

func (a *wildflyStreamingApplication) EnvVars() []corev1.EnvVar {
	return a.env
}

// Image is the prebuilt runtime image, deployed when the cluster cannot
// build from source
func (a *wildflyStreamingApplication) Image() string {
	return utils.WildflyImage
}

// BuildInput points the on-cluster build at the streamingApplicationDir module of
// the deployments repository
func (a *wildflyStreamingApplication) BuildInput() application.BuildInput {
	return application.BuildInput{
		URI: utils.DeploymentsRepo,
		Ref: utils.DeploymentsRef,
		Env: application.NewWildflyConfigurationFromEnv().BuildEnv(streamingApplicationDir),
	}
}
