package v1beta2

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Listener types accepted by the cluster operator
const (
	ListenerTypeInternal = "internal"
	ListenerTypeRoute    = "route"
	ListenerTypeNodePort = "nodeport"
)

// Listener authentication mechanisms
const (
	ListenerAuthTLS         = "tls"
	ListenerAuthScramSha512 = "scram-sha-512"
)

// KafkaListenerAuthentication selects the authentication mechanism of a listener
type KafkaListenerAuthentication struct {
	Type string `json:"type"`
}

// GenericKafkaListener configures one listener of the Kafka cluster
type GenericKafkaListener struct {
	Name string `json:"name"`
	Port int32  `json:"port"`
	Type string `json:"type"`
	TLS  bool   `json:"tls"`
	// +optional
	Authentication *KafkaListenerAuthentication `json:"authentication,omitempty"`
}

// Storage configures the persistence of Kafka or ZooKeeper nodes
type Storage struct {
	Type string `json:"type"`
	// +optional
	Size string `json:"size,omitempty"`
	// +optional
	DeleteClaim bool `json:"deleteClaim,omitempty"`
}

// KafkaClusterSpec configures the Kafka nodes of the cluster
type KafkaClusterSpec struct {
	// +optional
	Version   string                 `json:"version,omitempty"`
	Replicas  int32                  `json:"replicas"`
	Listeners []GenericKafkaListener `json:"listeners"`
	// Broker configuration passed through to server.properties
	// +optional
	Config *apiextensionsv1.JSON `json:"config,omitempty"`
	// +optional
	Storage Storage `json:"storage,omitempty"`
}

// ZookeeperClusterSpec configures the ZooKeeper ensemble of the cluster
type ZookeeperClusterSpec struct {
	Replicas int32 `json:"replicas"`
	// +optional
	Storage Storage `json:"storage,omitempty"`
}

// EntityOperatorSpec enables the topic and user operators
type EntityOperatorSpec struct {
	// +optional
	TopicOperator *apiextensionsv1.JSON `json:"topicOperator,omitempty"`
	// +optional
	UserOperator *apiextensionsv1.JSON `json:"userOperator,omitempty"`
}

// KafkaSpec defines the desired state of Kafka
type KafkaSpec struct {
	Kafka     KafkaClusterSpec     `json:"kafka"`
	Zookeeper ZookeeperClusterSpec `json:"zookeeper"`
	// +optional
	EntityOperator *EntityOperatorSpec `json:"entityOperator,omitempty"`
}

// Condition is the schema of the Strimzi status conditions
type Condition struct {
	// +optional
	Type string `json:"type,omitempty"`
	// +optional
	Status string `json:"status,omitempty"`
	// +optional
	Reason string `json:"reason,omitempty"`
	// +optional
	Message string `json:"message,omitempty"`
}

// ListenerStatus reports the addresses of one configured listener
type ListenerStatus struct {
	// +optional
	Name string `json:"name,omitempty"`
	// +optional
	BootstrapServers string `json:"bootstrapServers,omitempty"`
	// +optional
	Certificates []string `json:"certificates,omitempty"`
}

// KafkaStatus defines the observed state of Kafka
type KafkaStatus struct {
	// +optional
	Conditions []Condition `json:"conditions,omitempty"`
	// +optional
	Listeners []ListenerStatus `json:"listeners,omitempty"`
	// +optional
	ClusterID string `json:"clusterId,omitempty"`
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// Kafka is the Schema for the kafkas API
type Kafka struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KafkaSpec   `json:"spec,omitempty"`
	Status KafkaStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KafkaList contains a list of Kafka
type KafkaList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Kafka `json:"items"`
}

// KafkaTopicSpec defines the desired state of KafkaTopic
type KafkaTopicSpec struct {
	// +optional
	Partitions int32 `json:"partitions,omitempty"`
	// +optional
	Replicas int32 `json:"replicas,omitempty"`
	// +optional
	Config *apiextensionsv1.JSON `json:"config,omitempty"`
	// +optional
	TopicName string `json:"topicName,omitempty"`
}

// KafkaTopicStatus defines the observed state of KafkaTopic
type KafkaTopicStatus struct {
	// +optional
	Conditions []Condition `json:"conditions,omitempty"`
	// +optional
	TopicName string `json:"topicName,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// KafkaTopic is the Schema for the kafkatopics API
type KafkaTopic struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KafkaTopicSpec   `json:"spec,omitempty"`
	Status KafkaTopicStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KafkaTopicList contains a list of KafkaTopic
type KafkaTopicList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []KafkaTopic `json:"items"`
}

// KafkaUserAuthentication selects the authentication mechanism of a user
type KafkaUserAuthentication struct {
	Type string `json:"type"`
}

// KafkaUserSpec defines the desired state of KafkaUser
type KafkaUserSpec struct {
	// +optional
	Authentication *KafkaUserAuthentication `json:"authentication,omitempty"`
}

// KafkaUserStatus defines the observed state of KafkaUser
type KafkaUserStatus struct {
	// +optional
	Conditions []Condition `json:"conditions,omitempty"`
	// +optional
	Username string `json:"username,omitempty"`
	// The name of the secret holding the user credentials
	// +optional
	Secret string `json:"secret,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// KafkaUser is the Schema for the kafkausers API
type KafkaUser struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KafkaUserSpec   `json:"spec,omitempty"`
	Status KafkaUserStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KafkaUserList contains a list of KafkaUser
type KafkaUserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []KafkaUser `json:"items"`
}

// IsReady indicates whether the cluster operator reported the Ready condition true
func (k *Kafka) IsReady() bool {
	for _, c := range k.Status.Conditions {
		if c.Type == "Ready" && c.Status == "True" {
			return true
		}
	}
	return false
}

// BootstrapServers returns the bootstrap address of the named listener, "" when not yet reported
func (k *Kafka) BootstrapServers(listener string) string {
	for _, l := range k.Status.Listeners {
		if l.Name == listener {
			return l.BootstrapServers
		}
	}
	return ""
}

func init() {
	SchemeBuilder.Register(
		&Kafka{}, &KafkaList{},
		&KafkaTopic{}, &KafkaTopicList{},
		&KafkaUser{}, &KafkaUserList{},
	)
}
