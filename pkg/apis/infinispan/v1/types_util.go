package v1

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// IsConditionTrue reports whether the given cluster condition is currently true
func (ispn *Infinispan) IsConditionTrue(name ConditionType) bool {
	return ispn.GetCondition(name).Status == metav1.ConditionTrue
}

// GetCondition return the Status of the given condition or nil if condition is not present
func (ispn *Infinispan) GetCondition(condition ConditionType) InfinispanCondition {
	for _, c := range ispn.Status.Conditions {
		if c.Type == condition {
			return c
		}
	}
	// Absence of condition means `False` value
	return InfinispanCondition{Type: condition, Status: metav1.ConditionFalse}
}

// IsAuthenticationEnabled reports whether the endpoints require credentials
func (ispn *Infinispan) IsAuthenticationEnabled() bool {
	security := ispn.Spec.Security
	return security == nil || security.EndpointAuthentication == nil || *security.EndpointAuthentication
}

// IsEncryptionEnabled reports whether encryption is configured for the user endpoint
func (ispn *Infinispan) IsEncryptionEnabled() bool {
	security := ispn.Spec.Security
	if security == nil || security.EndpointEncryption == nil {
		return false
	}
	t := security.EndpointEncryption.Type
	return t != "" && t != CertificateSourceTypeNoneNoEncryption
}

// GetSecretName returns the name of the secret containing endpoint credentials
func (ispn *Infinispan) GetSecretName() string {
	security := ispn.Spec.Security
	if security == nil || security.EndpointSecretName == "" {
		return fmt.Sprintf("%s-generated-secret", ispn.GetName())
	}
	return security.EndpointSecretName
}

// GetExposeType returns the expose type, defaulting to NodePort when unset
func (ispn *Infinispan) GetExposeType() ExposeType {
	if ispn.Spec.Expose == nil {
		return ExposeTypeNodePort
	}
	return ispn.Spec.Expose.Type
}

// GetEndpointScheme returns the URL scheme clients must use for the user endpoint
func (ispn *Infinispan) GetEndpointScheme() string {
	if ispn.IsEncryptionEnabled() {
		return "https"
	}
	return "http"
}

// PodSelectorLabels returns the labels placed on cluster pods by the operator
func (ispn *Infinispan) PodSelectorLabels() map[string]string {
	return map[string]string{
		"app":           "infinispan-pod",
		"infinispan_cr": ispn.Name,
	}
}

// GetServiceExternalName returns the name of the external service created for the cluster
func (ispn *Infinispan) GetServiceExternalName() string {
	return fmt.Sprintf("%s-external", ispn.Name)
}
