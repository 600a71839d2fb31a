// Package application defines the descriptor contracts the test suites use to
// declare the services they provision. A descriptor carries everything a
// provisioner needs to deploy one service: the custom resource, supporting
// secrets and config maps, and for built applications the source repository.
package application

import (
	corev1 "k8s.io/api/core/v1"

	amqv1beta1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/activemq/v1beta1"
	ispnv1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	ispnv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	kafkav1beta2 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/kafka/v1beta2"
	keycloakv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/keycloak/v2alpha1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
)

// Application is the root contract of every service descriptor
type Application interface {
	// Name of the service, used for the CR name and to derive route names
	Name() string
}

// BuildInput points at the source the application is built from
type BuildInput struct {
	// URI of the git repository holding the deployments
	URI string
	// Ref is the branch, tag or commit to build
	Ref string
	// Env is applied to the s2i build, not to the runtime pods
	Env []corev1.EnvVar
}

// BuildApplication is implemented by descriptors whose application is built
// from source on the cluster
type BuildApplication interface {
	Application
	BuildInput() BuildInput
}

// ImageApplication is implemented by descriptors deploying a prebuilt image
type ImageApplication interface {
	Application
	Image() string
}

// SecretsProvider is implemented by descriptors that need secrets deployed
// before their service starts
type SecretsProvider interface {
	Secrets() []*corev1.Secret
}

// ConfigMapsProvider is implemented by descriptors carrying config maps
type ConfigMapsProvider interface {
	ConfigMaps() []*corev1.ConfigMap
}

// InfinispanApplication describes a cache service deployment
type InfinispanApplication interface {
	Application
	Infinispan() *ispnv1.Infinispan
	Caches() []*ispnv2alpha1.Cache
}

// ActiveMQApplication describes a broker deployment
type ActiveMQApplication interface {
	Application
	ActiveMQArtemis() *amqv1beta1.ActiveMQArtemis
	Addresses() []*amqv1beta1.ActiveMQArtemisAddress
}

// KeycloakApplication describes an identity provider deployment
type KeycloakApplication interface {
	Application
	Keycloak() *keycloakv2alpha1.Keycloak
	RealmImports() []*keycloakv2alpha1.KeycloakRealmImport
}

// KafkaApplication describes a streaming cluster deployment
type KafkaApplication interface {
	Application
	Kafka() *kafkav1beta2.Kafka
	Topics() []*kafkav1beta2.KafkaTopic
	Users() []*kafkav1beta2.KafkaUser
}

// WildflyApplication describes an application server deployment
type WildflyApplication interface {
	Application
	WildFlyServer() *wildflyv1alpha1.WildFlyServer
	EnvVars() []corev1.EnvVar
}
