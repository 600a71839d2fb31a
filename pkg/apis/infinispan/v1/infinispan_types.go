package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// InfinispanSecurity info for the user application connection
type InfinispanSecurity struct {
	// +optional
	EndpointAuthentication *bool `json:"endpointAuthentication,omitempty"`
	// +optional
	EndpointSecretName string `json:"endpointSecretName,omitempty"`
	// +optional
	EndpointEncryption *EndpointEncryption `json:"endpointEncryption,omitempty"`
}

// CertificateSourceType specifies all the possible sources for the encryption certificate
type CertificateSourceType string

const (
	// CertificateSourceTypeService certificate coming from a cluster service
	CertificateSourceTypeService CertificateSourceType = "Service"
	// CertificateSourceTypeSecret certificate coming from a user provided secret
	CertificateSourceTypeSecret CertificateSourceType = "Secret"
	// CertificateSourceTypeNoneNoEncryption encryption disabled
	CertificateSourceTypeNoneNoEncryption CertificateSourceType = "None"
)

// ClientCertType specifies a client certificate validation mechanism.
type ClientCertType string

const (
	// ClientCertNone no client certificates required
	ClientCertNone ClientCertType = "None"
	// ClientCertAuthenticate all client certificates must be in the configured truststore
	ClientCertAuthenticate ClientCertType = "Authenticate"
	// ClientCertValidate client certificates are validated against the CA in the truststore
	ClientCertValidate ClientCertType = "Validate"
)

// EndpointEncryption configuration
type EndpointEncryption struct {
	// +optional
	Type CertificateSourceType `json:"type,omitempty"`
	// +optional
	CertServiceName string `json:"certServiceName,omitempty"`
	// +optional
	CertSecretName string `json:"certSecretName,omitempty"`
	// +optional
	ClientCert ClientCertType `json:"clientCert,omitempty"`
	// +optional
	ClientCertSecretName string `json:"clientCertSecretName,omitempty"`
}

// InfinispanContainerSpec specify resource requirements per container
type InfinispanContainerSpec struct {
	// +optional
	ExtraJvmOpts string `json:"extraJvmOpts,omitempty"`
	// +optional
	Memory string `json:"memory,omitempty"`
	// +optional
	CPU string `json:"cpu,omitempty"`
}

// InfinispanServiceContainerSpec resource requirements specific for service
type InfinispanServiceContainerSpec struct {
	// +optional
	Storage *string `json:"storage,omitempty"`
	// +optional
	EphemeralStorage bool `json:"ephemeralStorage,omitempty"`
}

type ServiceType string

const (
	// ServiceTypeCache deploys Infinispan to act like a cache
	ServiceTypeCache ServiceType = "Cache"
	// ServiceTypeDataGrid deploys Infinispan to act like a data grid
	ServiceTypeDataGrid ServiceType = "DataGrid"
)

// InfinispanServiceSpec specify configuration for specific service
type InfinispanServiceSpec struct {
	Type ServiceType `json:"type,omitempty"`
	// +optional
	Container *InfinispanServiceContainerSpec `json:"container,omitempty"`
	// +optional
	ReplicationFactor int32 `json:"replicationFactor,omitempty"`
}

// ExposeType describe different exposition methods for Infinispan
type ExposeType string

const (
	// ExposeTypeNodePort means a service will be exposed on one port of every node
	ExposeTypeNodePort ExposeType = "NodePort"
	// ExposeTypeLoadBalancer means a service will be exposed via an external load balancer
	ExposeTypeLoadBalancer ExposeType = "LoadBalancer"
	// ExposeTypeRoute means the service will be exposed via an OpenShift Route
	ExposeTypeRoute ExposeType = "Route"
)

// ExposeSpec describe how Infinispan will be exposed externally
type ExposeSpec struct {
	Type ExposeType `json:"type"`
	// +optional
	NodePort int32 `json:"nodePort,omitempty"`
	// +optional
	Host string `json:"host,omitempty"`
}

// InfinispanSpec defines the desired state of Infinispan
type InfinispanSpec struct {
	Replicas int32 `json:"replicas"`
	// +optional
	Image *string `json:"image,omitempty"`
	// +optional
	Security *InfinispanSecurity `json:"security,omitempty"`
	// +optional
	Container InfinispanContainerSpec `json:"container,omitempty"`
	// +optional
	Service InfinispanServiceSpec `json:"service,omitempty"`
	// +optional
	Expose *ExposeSpec `json:"expose,omitempty"`
}

type ConditionType string

const (
	// ConditionWellFormed means the cluster is formed with the expected members
	ConditionWellFormed ConditionType = "WellFormed"
	// ConditionGracefulShutdown means the cluster has been shut down gracefully
	ConditionGracefulShutdown ConditionType = "GracefulShutdown"
	// ConditionStopping means the cluster is in the process of stopping
	ConditionStopping ConditionType = "Stopping"
)

// InfinispanCondition define a condition of the cluster
type InfinispanCondition struct {
	// Type is the type of the condition.
	Type ConditionType `json:"type"`
	// Status is the status of the condition.
	Status metav1.ConditionStatus `json:"status"`
	// Human-readable message indicating details about last transition.
	// +optional
	Message string `json:"message,omitempty"`
}

// InfinispanStatus defines the observed state of Infinispan
type InfinispanStatus struct {
	// +optional
	Conditions []InfinispanCondition `json:"conditions,omitempty"`
	// +optional
	StatefulSetName string `json:"statefulSetName,omitempty"`
	// +optional
	ReplicasWantedAtRestart int32 `json:"replicasWantedAtRestart,omitempty"`
	// +optional
	ConsoleUrl *string `json:"consoleUrl,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// Infinispan is the Schema for the infinispans API
type Infinispan struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   InfinispanSpec   `json:"spec,omitempty"`
	Status InfinispanStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// InfinispanList contains a list of Infinispan
type InfinispanList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Infinispan `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Infinispan{}, &InfinispanList{})
}
