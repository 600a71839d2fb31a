package v2alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AdminAuth description of the auth info
type AdminAuth struct {
	// The secret that contains user credentials.
	// +optional
	SecretName string `json:"secretName,omitempty"`
}

// CacheSpec defines the desired state of Cache
type CacheSpec struct {
	// Name of the cluster where to create the cache
	ClusterName string `json:"clusterName"`
	// Name of the cache to be created. If empty ObjectMeta.Name will be used
	// +optional
	Name string `json:"name,omitempty"`
	// Cache template in XML, JSON or YAML format
	// +optional
	Template string `json:"template,omitempty"`
	// Name of the template to be used to create this cache
	// +optional
	TemplateName string `json:"templateName,omitempty"`
	// +optional
	AdminAuth *AdminAuth `json:"adminAuth,omitempty"`
}

// CacheCondition define a condition of the cache
type CacheCondition struct {
	// Type is the type of the condition.
	Type string `json:"type"`
	// Status is the status of the condition.
	Status metav1.ConditionStatus `json:"status"`
	// +optional
	Message string `json:"message,omitempty"`
}

// CacheStatus defines the observed state of Cache
type CacheStatus struct {
	// +optional
	Conditions []CacheCondition `json:"conditions,omitempty"`
	// +optional
	ServiceName string `json:"serviceName,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// Cache is the Schema for the caches API
type Cache struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   CacheSpec   `json:"spec,omitempty"`
	Status CacheStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// CacheList contains a list of Cache
type CacheList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Cache `json:"items"`
}

// IsReady reports whether the operator has created the cache on the cluster
func (c *Cache) IsReady() bool {
	for _, condition := range c.Status.Conditions {
		if condition.Type == "Ready" {
			return condition.Status == metav1.ConditionTrue
		}
	}
	return false
}

// GetCacheName returns the name of the cache created on the cluster
func (c *Cache) GetCacheName() string {
	if c.Spec.Name != "" {
		return c.Spec.Name
	}
	return c.Name
}

func init() {
	SchemeBuilder.Register(&Cache{}, &CacheList{})
}
