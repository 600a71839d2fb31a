package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DeploymentPlanType defines the broker deployment topology
type DeploymentPlanType struct {
	// The image used for the broker deployment
	// +optional
	Image string `json:"image,omitempty"`
	// The init container image used to configure the broker
	// +optional
	InitImage string `json:"initImage,omitempty"`
	// The number of broker pods to deploy
	// +optional
	Size *int32 `json:"size,omitempty"`
	// If true require user password login credentials for broker protocol ports
	// +optional
	RequireLogin bool `json:"requireLogin,omitempty"`
	// If true use persistent volume via persistent volume claim for journal storage
	// +optional
	PersistenceEnabled bool `json:"persistenceEnabled,omitempty"`
	// If aio use ASYNCIO, if nio use NIO for journal IO
	// +optional
	JournalType string `json:"journalType,omitempty"`
	// If true migrate messages on scaledown
	// +optional
	MessageMigration *bool `json:"messageMigration,omitempty"`
	// If true enable the Jolokia JVM Agent
	// +optional
	JolokiaAgentEnabled bool `json:"jolokiaAgentEnabled,omitempty"`
	// If true enable the management role based access control
	// +optional
	ManagementRBACEnabled bool `json:"managementRBACEnabled,omitempty"`
}

// AcceptorType defines a broker acceptor configuration
type AcceptorType struct {
	// The name of the acceptor
	Name string `json:"name"`
	// Port number
	// +optional
	Port int32 `json:"port,omitempty"`
	// The protocols to enable for this acceptor
	// +optional
	Protocols string `json:"protocols,omitempty"`
	// Whether or not to enable SSL on this port
	// +optional
	SSLEnabled bool `json:"sslEnabled,omitempty"`
	// Name of the secret to use for ssl information
	// +optional
	SSLSecret string `json:"sslSecret,omitempty"`
	// The name of the truststore provider
	// +optional
	SSLProvider string `json:"sslProvider,omitempty"`
	// The CN of the connecting client's SSL certificate will be compared to its hostname
	// +optional
	VerifyHost bool `json:"verifyHost,omitempty"`
	// Whether or not to expose this acceptor
	// +optional
	Expose bool `json:"expose,omitempty"`
	// Limits the number of connections which the acceptor will allow
	// +optional
	ConnectionsAllowed int64 `json:"connectionsAllowed,omitempty"`
	// Prefix used when sending anycast messages
	// +optional
	AnycastPrefix string `json:"anycastPrefix,omitempty"`
	// Prefix used when sending multicast messages
	// +optional
	MulticastPrefix string `json:"multicastPrefix,omitempty"`
}

// ConsoleType defines the management console configuration
type ConsoleType struct {
	// Whether or not to expose this port
	// +optional
	Expose bool `json:"expose,omitempty"`
	// Whether or not to enable SSL on this port
	// +optional
	SSLEnabled bool `json:"sslEnabled,omitempty"`
	// Name of the secret to use for ssl information
	// +optional
	SSLSecret string `json:"sslSecret,omitempty"`
}

// ActiveMQArtemisUpgrades defines the automatic upgrade behaviour
type ActiveMQArtemisUpgrades struct {
	// Set to true to enable automatic micro version product upgrades
	Enabled bool `json:"enabled"`
	// Set to true to enable automatic micro version product upgrades
	Minor bool `json:"minor"`
}

// ActiveMQArtemisSpec defines the desired state of ActiveMQArtemis
type ActiveMQArtemisSpec struct {
	// User name for standard broker user
	// +optional
	AdminUser string `json:"adminUser,omitempty"`
	// Password for standard broker user
	// +optional
	AdminPassword string `json:"adminPassword,omitempty"`
	// +optional
	DeploymentPlan DeploymentPlanType `json:"deploymentPlan,omitempty"`
	// +optional
	Acceptors []AcceptorType `json:"acceptors,omitempty"`
	// +optional
	Console ConsoleType `json:"console,omitempty"`
	// +optional
	Upgrades ActiveMQArtemisUpgrades `json:"upgrades,omitempty"`
}

// ActiveMQArtemisStatus defines the observed state of ActiveMQArtemis
type ActiveMQArtemisStatus struct {
	// +optional
	PodStatus DeploymentPlanStatus `json:"podStatus,omitempty"`
	// +optional
	DeploymentPlanSize int32 `json:"deploymentPlanSize,omitempty"`
}

// DeploymentPlanStatus lists pods by readiness
type DeploymentPlanStatus struct {
	// Deployments are ready to serve requests
	// +optional
	Ready []string `json:"ready,omitempty"`
	// Deployments are starting, may or may not succeed
	// +optional
	Starting []string `json:"starting,omitempty"`
	// Deployments are not starting, unclear what next step will be
	// +optional
	Stopped []string `json:"stopped,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// ActiveMQArtemis is the Schema for the activemqartemises API
type ActiveMQArtemis struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ActiveMQArtemisSpec   `json:"spec,omitempty"`
	Status ActiveMQArtemisStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ActiveMQArtemisList contains a list of ActiveMQArtemis
type ActiveMQArtemisList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ActiveMQArtemis `json:"items"`
}

// ActiveMQArtemisAddressSpec defines a broker address with an associated queue
type ActiveMQArtemisAddressSpec struct {
	AddressName string `json:"addressName"`
	QueueName   string `json:"queueName"`
	RoutingType string `json:"routingType"`
}

// +kubebuilder:object:root=true

// ActiveMQArtemisAddress is the Schema for the activemqartemisaddresses API
type ActiveMQArtemisAddress struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ActiveMQArtemisAddressSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// ActiveMQArtemisAddressList contains a list of ActiveMQArtemisAddress
type ActiveMQArtemisAddressList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ActiveMQArtemisAddress `json:"items"`
}

// PodSelectorLabels returns the labels placed on broker pods by the operator
func (b *ActiveMQArtemis) PodSelectorLabels() map[string]string {
	return map[string]string{"ActiveMQArtemis": b.Name}
}

func init() {
	SchemeBuilder.Register(
		&ActiveMQArtemis{}, &ActiveMQArtemisList{},
		&ActiveMQArtemisAddress{}, &ActiveMQArtemisAddressList{},
	)
}
