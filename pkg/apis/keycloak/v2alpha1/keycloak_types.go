package v2alpha1

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SecretKeySelector points at a key inside a secret in the same namespace
type SecretKeySelector struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// DatabaseSpec configures the external database used by the Keycloak server
type DatabaseSpec struct {
	// The database vendor, for example postgres
	// +optional
	Vendor string `json:"vendor,omitempty"`
	// +optional
	Host string `json:"host,omitempty"`
	// +optional
	Port int32 `json:"port,omitempty"`
	// +optional
	Database string `json:"database,omitempty"`
	// +optional
	UsernameSecret *SecretKeySelector `json:"usernameSecret,omitempty"`
	// +optional
	PasswordSecret *SecretKeySelector `json:"passwordSecret,omitempty"`
}

// HostnameSpec configures the server hostname settings
type HostnameSpec struct {
	// +optional
	Hostname string `json:"hostname,omitempty"`
	// +optional
	Strict bool `json:"strict,omitempty"`
}

// HTTPSpec configures the serving certificates of the Keycloak server
type HTTPSpec struct {
	// The name of the secret holding tls.crt and tls.key
	// +optional
	TLSSecret string `json:"tlsSecret,omitempty"`
	// +optional
	HTTPEnabled bool `json:"httpEnabled,omitempty"`
}

// IngressSpec controls whether the operator creates an ingress for the server
type IngressSpec struct {
	Enabled bool `json:"enabled"`
	// ClassName of the ingress, required on OpenShift 4.12 and newer
	// +optional
	ClassName string `json:"className,omitempty"`
}

// UnsupportedSpec carries raw pod template overrides passed through to the statefulset
type UnsupportedSpec struct {
	// +optional
	PodTemplate *apiextensionsv1.JSON `json:"podTemplate,omitempty"`
}

// KeycloakSpec defines the desired state of Keycloak
type KeycloakSpec struct {
	// Number of Keycloak server instances
	// +optional
	Instances int64 `json:"instances,omitempty"`
	// +optional
	Database *DatabaseSpec `json:"db,omitempty"`
	// +optional
	Hostname *HostnameSpec `json:"hostname,omitempty"`
	// +optional
	HTTP *HTTPSpec `json:"http,omitempty"`
	// +optional
	Ingress *IngressSpec `json:"ingress,omitempty"`
	// +optional
	Image string `json:"image,omitempty"`
	// +optional
	StartOptimized bool `json:"startOptimized,omitempty"`
	// Additional server options passed as-is to the Keycloak distribution
	// +optional
	AdditionalOptions []ValueOrSecret `json:"additionalOptions,omitempty"`
	// +optional
	Unsupported *UnsupportedSpec `json:"unsupported,omitempty"`
}

// ValueOrSecret is a server option whose value is either inline or a secret reference
type ValueOrSecret struct {
	Name string `json:"name"`
	// +optional
	Value string `json:"value,omitempty"`
	// +optional
	Secret *SecretKeySelector `json:"secret,omitempty"`
}

// KeycloakConditionType names a condition reported by the Keycloak operator
type KeycloakConditionType string

const (
	ConditionReady         KeycloakConditionType = "Ready"
	ConditionHasErrors     KeycloakConditionType = "HasErrors"
	ConditionRollingUpdate KeycloakConditionType = "RollingUpdate"
)

// KeycloakCondition is a reported condition with its latest observed status
type KeycloakCondition struct {
	Type KeycloakConditionType `json:"type"`
	// +optional
	Status metav1.ConditionStatus `json:"status,omitempty"`
	// +optional
	Message string `json:"message,omitempty"`
}

// KeycloakStatus defines the observed state of Keycloak
type KeycloakStatus struct {
	// +optional
	Conditions []KeycloakCondition `json:"conditions,omitempty"`
	// +optional
	Instances int64 `json:"instances,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// Keycloak is the Schema for the keycloaks API
type Keycloak struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KeycloakSpec   `json:"spec,omitempty"`
	Status KeycloakStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KeycloakList contains a list of Keycloak
type KeycloakList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Keycloak `json:"items"`
}

// KeycloakRealmImportSpec defines a realm to import into an existing Keycloak deployment
type KeycloakRealmImportSpec struct {
	// The name of the Keycloak CR to import the realm into
	KeycloakCRName string `json:"keycloakCRName"`
	// The realm representation, the same JSON document the admin console exports
	Realm apiextensionsv1.JSON `json:"realm"`
}

// KeycloakRealmImportStatus defines the observed state of KeycloakRealmImport
type KeycloakRealmImportStatus struct {
	// +optional
	Conditions []KeycloakCondition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// KeycloakRealmImport is the Schema for the keycloakrealmimports API
type KeycloakRealmImport struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KeycloakRealmImportSpec   `json:"spec,omitempty"`
	Status KeycloakRealmImportStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KeycloakRealmImportList contains a list of KeycloakRealmImport
type KeycloakRealmImportList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []KeycloakRealmImport `json:"items"`
}

func init() {
	SchemeBuilder.Register(
		&Keycloak{}, &KeycloakList{},
		&KeycloakRealmImport{}, &KeycloakRealmImportList{},
	)
}
