package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StandaloneConfigMapSpec mounts a standalone.xml from a config map into the server
type StandaloneConfigMapSpec struct {
	Name string `json:"name"`
	// Key of the config map whose value is the standalone XML, standalone.xml when absent
	// +optional
	Key string `json:"key,omitempty"`
}

// StorageSpec configures the persistent storage of the server data directory
type StorageSpec struct {
	// +optional
	EmptyDir *corev1.EmptyDirVolumeSource `json:"emptyDir,omitempty"`
	// +optional
	VolumeClaimTemplate *corev1.PersistentVolumeClaim `json:"volumeClaimTemplate,omitempty"`
}

// WildFlyServerSpec defines the desired state of WildFlyServer
type WildFlyServerSpec struct {
	// ApplicationImage is the name of the application image to be deployed
	ApplicationImage string `json:"applicationImage"`
	Replicas         int32  `json:"replicas"`
	// If true the operator runs the image as a bootable JAR server
	// +optional
	BootableJar bool `json:"bootableJar,omitempty"`
	// +optional
	SessionAffinity bool `json:"sessionAffinity,omitempty"`
	// +optional
	DisableHTTPRoute bool `json:"disableHTTPRoute,omitempty"`
	// +optional
	StandaloneConfigMap *StandaloneConfigMapSpec `json:"standaloneConfigMap,omitempty"`
	// +optional
	Storage *StorageSpec `json:"storage,omitempty"`
	// +optional
	ServiceAccountName string `json:"serviceAccountName,omitempty"`
	// Env variables exposed to the server container
	// +optional
	Env []corev1.EnvVar `json:"env,omitempty"`
	// EnvFrom sources exposed to the server container
	// +optional
	EnvFrom []corev1.EnvFromSource `json:"envFrom,omitempty"`
	// Names of secrets mounted in the server pods under /etc/secrets/<name>
	// +optional
	Secrets []string `json:"secrets,omitempty"`
	// Names of config maps mounted in the server pods under /etc/configmaps/<name>
	// +optional
	ConfigMaps []string `json:"configMaps,omitempty"`
}

// Possible states of a server pod during transaction recovery scaledown
const (
	PodStateActive                           = "ACTIVE"
	PodStateScalingDownRecoveryInvestigation = "SCALING_DOWN_RECOVERY_INVESTIGATION"
	PodStateScalingDownRecoveryDirty         = "SCALING_DOWN_RECOVERY_DIRTY"
	PodStateScalingDownClean                 = "SCALING_DOWN_CLEAN"
)

// PodStatus reports name, address and scaledown state of one server pod
type PodStatus struct {
	Name  string `json:"name"`
	PodIP string `json:"podIP"`
	// Represents the state for scaling down during transaction recovery
	// +optional
	State string `json:"state,omitempty"`
}

// WildFlyServerStatus defines the observed state of WildFlyServer
type WildFlyServerStatus struct {
	// +optional
	Replicas int32 `json:"replicas"`
	// +optional
	Selector string `json:"selector,omitempty"`
	// +optional
	Hosts []string `json:"hosts,omitempty"`
	// +optional
	Pods []PodStatus `json:"pods,omitempty"`
	// +optional
	ScalingdownPods int32 `json:"scalingdownPods"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// WildFlyServer is the Schema for the wildflyservers API
type WildFlyServer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   WildFlyServerSpec   `json:"spec,omitempty"`
	Status WildFlyServerStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// WildFlyServerList contains a list of WildFlyServer
type WildFlyServerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []WildFlyServer `json:"items"`
}

// PodSelectorLabels returns the labels placed on server pods by the operator
func (w *WildFlyServer) PodSelectorLabels() map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":       w.Name,
		"app.kubernetes.io/managed-by": "wildfly-operator",
	}
}

// HeadlessServiceName returns the name of the headless service fronting the server pods
func (w *WildFlyServer) HeadlessServiceName() string {
	return w.Name + "-headless"
}

// LoadBalancerName returns the name of the loadbalancer service created by the operator
func (w *WildFlyServer) LoadBalancerName() string {
	return w.Name + "-loadbalancer"
}

func init() {
	SchemeBuilder.Register(&WildFlyServer{}, &WildFlyServerList{})
}
