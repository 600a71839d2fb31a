package messaging

import (
	"fmt"
	"strconv"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	amqv1beta1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/activemq/v1beta1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/keystore"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const (
	brokerName   = "activemq-artemis"
	acceptorName = "sslacceptor"
	acceptorPort = 61617

	adminUser     = "admin"
	adminPassword = "3up3r3cr3t!passwd"
	storePass     = "s3cr3t!passwd"
	keyAlias      = "server"

	brokerSSLSecretName = acceptorName + "-secret"

	wildflyName          = "wildfly-jms"
	truststoreSecretName = wildflyName + "-truststore-secret"
	truststoreFileName   = "client.ts"

	jmsApplicationDir = "wildfly/activemq-artemis-ssl"

	inQueue  = "inQueue"
	outQueue = "outQueue"
)

// acceptorServiceName is the service the operator creates for an exposed
// acceptor, <cr-name>-<acceptor-name>-<pod-ordinal>-svc. The broker
// certificate is issued for this host and the application connects to it.
func acceptorServiceName() string {
	return fmt.Sprintf("%s-%s-0-svc", brokerName, acceptorName)
}

// activeMQService describes a two node broker cluster with a single SSL
// acceptor. Both stores of the acceptor secret come from the same generated
// certificate, the application trusts it through its own truststore secret.
type activeMQService struct {
	broker  *amqv1beta1.ActiveMQArtemis
	secrets []*corev1.Secret
}

func newActiveMQService(certificate *keystore.CertificateInfo) (*activeMQService, error) {
	ks, err := certificate.KeystoreBytes()
	if err != nil {
		return nil, err
	}
	ts, err := certificate.TruststoreBytes()
	if err != nil {
		return nil, err
	}
	sslSecret := keystore.BrokerSSLSecret(brokerSSLSecretName, "", keyAlias, storePass, ks, ts)
	sslSecret.Labels = map[string]string{"app": brokerName}

	size := int32(2)
	messageMigration := false
	return &activeMQService{
		broker: &amqv1beta1.ActiveMQArtemis{
			ObjectMeta: metav1.ObjectMeta{
				Name: brokerName,
			},
			Spec: amqv1beta1.ActiveMQArtemisSpec{
				AdminUser:     adminUser,
				AdminPassword: adminPassword,
				DeploymentPlan: amqv1beta1.DeploymentPlanType{
					Size:         &size,
					RequireLogin: true,
					// Journal kept in memory, XA recovery is driven from the
					// application side
					PersistenceEnabled: false,
					JournalType:        "nio",
					MessageMigration:   &messageMigration,
				},
				Acceptors: []amqv1beta1.AcceptorType{{
					Name:               acceptorName,
					Port:               acceptorPort,
					Protocols:          "all",
					SSLEnabled:         true,
					SSLSecret:          brokerSSLSecretName,
					SSLProvider:        "JDK",
					VerifyHost:         false,
					Expose:             true,
					ConnectionsAllowed: 10,
					AnycastPrefix:      "jms.queue.",
					MulticastPrefix:    "jms.topic.",
				}},
				Console: amqv1beta1.ConsoleType{
					Expose: true,
				},
				Upgrades: amqv1beta1.ActiveMQArtemisUpgrades{
					Enabled: false,
					Minor:   false,
				},
			},
		},
		secrets: []*corev1.Secret{sslSecret},
	}, nil
}

func (s *activeMQService) Name() string {
	return s.broker.Name
}

func (s *activeMQService) ActiveMQArtemis() *amqv1beta1.ActiveMQArtemis {
	return s.broker
}

// Addresses is empty, the broker creates the test queues on demand from the
// destination definitions of the application
func (s *activeMQService) Addresses() []*amqv1beta1.ActiveMQArtemisAddress {
	return nil
}

func (s *activeMQService) Secrets() []*corev1.Secret {
	return s.secrets
}

// wildflyJmsApplication describes a server with the embedded broker disabled,
// connecting to the remote acceptor over SSL. The data directory is backed by
// a persistent volume so transaction logs survive a pod restart.
type wildflyJmsApplication struct {
	server  *wildflyv1alpha1.WildFlyServer
	env     []corev1.EnvVar
	secrets []*corev1.Secret
}

func newWildflyJmsApplication(certificate *keystore.CertificateInfo, replicas int32) (*wildflyJmsApplication, error) {
	ts, err := certificate.TruststoreBytes()
	if err != nil {
		return nil, err
	}
	truststoreSecret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:   truststoreSecretName,
			Labels: map[string]string{"app": wildflyName},
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			"alias":              keyAlias,
			"trustStorePassword": storePass,
		},
		Data: map[string][]byte{
			truststoreFileName: ts,
		},
	}

	var env []corev1.EnvVar
	env = append(env,
		corev1.EnvVar{Name: "DISABLE_EMBEDDED_JMS_BROKER", Value: "true"},
		corev1.EnvVar{Name: "ARTEMIS_USER", Value: adminUser},
		corev1.EnvVar{Name: "ARTEMIS_PASSWORD", Value: adminPassword},
		corev1.EnvVar{Name: "TRUST_STORE_FILENAME", Value: fmt.Sprintf("/etc/secrets/%s/%s", truststoreSecretName, truststoreFileName)},
		corev1.EnvVar{Name: "TRUSTSTORE_PASSWORD", Value: storePass},
		// Feeds the messaging-activemq outbound socket binding of the default
		// remote broker configuration
		corev1.EnvVar{Name: "JBOSS_MESSAGING_CONNECTOR_HOST", Value: acceptorServiceName()},
		corev1.EnvVar{Name: "JBOSS_MESSAGING_CONNECTOR_PORT", Value: strconv.Itoa(acceptorPort)},
	)

	return &wildflyJmsApplication{
		server: &wildflyv1alpha1.WildFlyServer{
			ObjectMeta: metav1.ObjectMeta{
				Name: wildflyName,
			},
			Spec: wildflyv1alpha1.WildFlyServerSpec{
				Replicas: replicas,
				Secrets:  []string{truststoreSecretName},
				Storage: &wildflyv1alpha1.StorageSpec{
					VolumeClaimTemplate: &corev1.PersistentVolumeClaim{
						Spec: corev1.PersistentVolumeClaimSpec{
							AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
							Resources: corev1.ResourceRequirements{
								Requests: corev1.ResourceList{
									corev1.ResourceStorage: resource.MustParse("1Gi"),
								},
							},
						},
					},
				},
			},
		},
		env:     env,
		secrets: []*corev1.Secret{truststoreSecret},
	}, nil
}

func (a *wildflyJmsApplication) Name() string {
	return a.server.Name
}

func (a *wildflyJmsApplication) WildFlyServer() *wildflyv1alpha1.WildFlyServer {
	return a.server
}

func (a *wildflyJmsApplication) EnvVars() []corev1.EnvVar {
	return a.env
}

// Image is the prebuilt runtime image, deployed when the cluster cannot
// build from source
func (a *wildflyJmsApplication) Image() string {
	return utils.WildflyImage
}

// BuildInput points the on-cluster build at the jmsApplicationDir module of
// the deployments repository
func (a *wildflyJmsApplication) BuildInput() application.BuildInput {
	return application.BuildInput{
		URI: utils.DeploymentsRepo,
		Ref: utils.DeploymentsRef,
		Env: application.NewWildflyConfigurationFromEnv().BuildEnv(jmsApplicationDir),
	}
}

func (a *wildflyJmsApplication) Secrets() []*corev1.Secret {
	return a.secrets
}
