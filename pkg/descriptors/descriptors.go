// Package descriptors renders representative custom resources of each service
// kind the suites deploy. The renderings document what lands on the cluster
// and feed the descriptors CLI.
package descriptors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	buildv1 "github.com/openshift/api/build/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/pointer"
	"sigs.k8s.io/yaml"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"

	amqv1beta1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/activemq/v1beta1"
	ispnv1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	ispnv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	kafkav1beta2 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/kafka/v1beta2"
	keycloakv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/keycloak/v2alpha1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
)

var registry = map[string]func() ([]interface{}, error){
	"infinispan": infinispanExample,
	"activemq":   activemqExample,
	"keycloak":   keycloakExample,
	"kafka":      kafkaExample,
	"wildfly":    wildflyExample,
}

// Names lists the renderable descriptors in a stable order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the YAML rendering of the named descriptor, documents
// separated the kubectl way
func Render(name string) ([]byte, error) {
	example, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown descriptor '%s', expected one of %v", name, Names())
	}
	objects, err := example()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, object := range objects {
		if i > 0 {
			buf.WriteString("---\n")
		}
		out, err := yaml.Marshal(object)
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

func infinispanExample() ([]interface{}, error) {
	return []interface{}{
		&ispnv1.Infinispan{
			TypeMeta: metav1.TypeMeta{
				APIVersion: ispnv1.GroupVersion.String(),
				Kind:       "Infinispan",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name:   "infinispan",
				Labels: map[string]string{"app": "datagrid"},
			},
			Spec: ispnv1.InfinispanSpec{
				Replicas: 2,
				Security: &ispnv1.InfinispanSecurity{
					EndpointSecretName: "infinispan-custom-credentials-secret",
				},
			},
		},
		&ispnv2alpha1.Cache{
			TypeMeta: metav1.TypeMeta{
				APIVersion: ispnv2alpha1.GroupVersion.String(),
				Kind:       "Cache",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "sessions",
			},
			Spec: ispnv2alpha1.CacheSpec{
				ClusterName: "infinispan",
				Name:        "sessions",
				Template:    `<distributed-cache mode="SYNC" statistics="true"/>`,
			},
		},
	}, nil
}

func activemqExample() ([]interface{}, error) {
	return []interface{}{
		&amqv1beta1.ActiveMQArtemis{
			TypeMeta: metav1.TypeMeta{
				APIVersion: amqv1beta1.GroupVersion.String(),
				Kind:       "ActiveMQArtemis",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "activemq-artemis",
			},
			Spec: amqv1beta1.ActiveMQArtemisSpec{
				AdminUser:     "admin",
				AdminPassword: "admin-password",
				DeploymentPlan: amqv1beta1.DeploymentPlanType{
					Size:               pointer.Int32(2),
					PersistenceEnabled: false,
					JournalType:        "nio",
					MessageMigration:   pointer.Bool(false),
				},
				Acceptors: []amqv1beta1.AcceptorType{{
					Name:            "sslacceptor",
					Port:            61617,
					Protocols:       "all",
					SSLEnabled:      true,
					SSLSecret:       "sslacceptor-secret",
					SSLProvider:     "JDK",
					Expose:          true,
					AnycastPrefix:   "jms.queue.",
					MulticastPrefix: "jms.topic.",
				}},
				Console: amqv1beta1.ConsoleType{Expose: true},
			},
		},
		&amqv1beta1.ActiveMQArtemisAddress{
			TypeMeta: metav1.TypeMeta{
				APIVersion: amqv1beta1.GroupVersion.String(),
				Kind:       "ActiveMQArtemisAddress",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "in-queue",
			},
			Spec: amqv1beta1.ActiveMQArtemisAddressSpec{
				AddressName: "inQueue",
				QueueName:   "inQueue",
				RoutingType: "anycast",
			},
		},
	}, nil
}

func keycloakExample() ([]interface{}, error) {
	realm, err := json.Marshal(map[string]interface{}{
		"id":      "example-realm",
		"realm":   "example-realm",
		"enabled": true,
	})
	if err != nil {
		return nil, err
	}
	return []interface{}{
		&keycloakv2alpha1.Keycloak{
			TypeMeta: metav1.TypeMeta{
				APIVersion: keycloakv2alpha1.GroupVersion.String(),
				Kind:       "Keycloak",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "keycloak",
			},
			Spec: keycloakv2alpha1.KeycloakSpec{
				Instances: 1,
				HTTP: &keycloakv2alpha1.HTTPSpec{
					TLSSecret: "keycloak-tls",
				},
				Ingress: &keycloakv2alpha1.IngressSpec{
					Enabled:   true,
					ClassName: "openshift-default",
				},
			},
		},
		&keycloakv2alpha1.KeycloakRealmImport{
			TypeMeta: metav1.TypeMeta{
				APIVersion: keycloakv2alpha1.GroupVersion.String(),
				Kind:       "KeycloakRealmImport",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "example-realm",
			},
			Spec: keycloakv2alpha1.KeycloakRealmImportSpec{
				KeycloakCRName: "keycloak",
				Realm:          apiextensionsv1.JSON{Raw: realm},
			},
		},
	}, nil
}

func kafkaExample() ([]interface{}, error) {
	config, err := json.Marshal(map[string]interface{}{
		"offsets.topic.replication.factor": 1,
	})
	if err != nil {
		return nil, err
	}
	return []interface{}{
		&kafkav1beta2.Kafka{
			TypeMeta: metav1.TypeMeta{
				APIVersion: kafkav1beta2.GroupVersion.String(),
				Kind:       "Kafka",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "amq-streams",
			},
			Spec: kafkav1beta2.KafkaSpec{
				Kafka: kafkav1beta2.KafkaClusterSpec{
					Replicas: 1,
					Listeners: []kafkav1beta2.GenericKafkaListener{
						{
							Name: "plain",
							Port: 9092,
							Type: kafkav1beta2.ListenerTypeInternal,
						},
						{
							Name: "secured",
							Port: 9093,
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
			},
		},
		&kafkav1beta2.KafkaTopic{
			TypeMeta: metav1.TypeMeta{
				APIVersion: kafkav1beta2.GroupVersion.String(),
				Kind:       "KafkaTopic",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name:   "messages",
				Labels: map[string]string{"strimzi.io/cluster": "amq-streams"},
			},
			Spec: kafkav1beta2.KafkaTopicSpec{
				Partitions: 1,
				Replicas:   1,
			},
		},
		&kafkav1beta2.KafkaUser{
			TypeMeta: metav1.TypeMeta{
				APIVersion: kafkav1beta2.GroupVersion.String(),
				Kind:       "KafkaUser",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name:   "streaming-user",
				Labels: map[string]string{"strimzi.io/cluster": "amq-streams"},
			},
			Spec: kafkav1beta2.KafkaUserSpec{
				Authentication: &kafkav1beta2.KafkaUserAuthentication{
					Type: kafkav1beta2.ListenerAuthScramSha512,
				},
			},
		},
	}, nil
}

func wildflyExample() ([]interface{}, error) {
	config := application.NewWildflyConfigurationFromEnv()
	return []interface{}{
		&buildv1.BuildConfig{
			TypeMeta: metav1.TypeMeta{
				APIVersion: buildv1.GroupVersion.String(),
				Kind:       "BuildConfig",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "wildfly-app",
			},
			Spec: buildv1.BuildConfigSpec{
				CommonSpec: buildv1.CommonSpec{
					Source: buildv1.BuildSource{
						Type: buildv1.BuildSourceGit,
						Git: &buildv1.GitBuildSource{
							URI: "https://github.com/Intersmash/intersmash.git",
							Ref: "main",
						},
					},
					Strategy: buildv1.BuildStrategy{
						Type: buildv1.SourceBuildStrategyType,
						SourceStrategy: &buildv1.SourceBuildStrategy{
							From: corev1.ObjectReference{
								Kind: "DockerImage",
								Name: "quay.io/wildfly/wildfly-s2i:latest",
							},
							Env: config.BuildEnv("wildfly/example-app"),
						},
					},
					Output: buildv1.BuildOutput{
						To: &corev1.ObjectReference{
							Kind: "ImageStreamTag",
							Name: "wildfly-app:latest",
						},
					},
				},
				Triggers: []buildv1.BuildTriggerPolicy{{
					Type: buildv1.ConfigChangeBuildTriggerType,
				}},
			},
		},
		&wildflyv1alpha1.WildFlyServer{
			TypeMeta: metav1.TypeMeta{
				APIVersion: wildflyv1alpha1.GroupVersion.String(),
				Kind:       "WildFlyServer",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: "wildfly-app",
			},
			Spec: wildflyv1alpha1.WildFlyServerSpec{
				ApplicationImage: "image-registry.openshift-image-registry.svc:5000/intersmash-testing/wildfly-app:latest",
				Replicas:         1,
			},
		},
	}, nil
}
