package v2alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

// GetCondition return the condition with the passed condition type from
// the status object. If the condition is not present, return nil.
func (k *Keycloak) GetCondition(condition KeycloakConditionType) *KeycloakCondition {
	for i, c := range k.Status.Conditions {
		if c.Type == condition {
			return &k.Status.Conditions[i]
		}
	}
	return nil
}

// IsConditionTrue indicates whether the condition is currently true
func (k *Keycloak) IsConditionTrue(condition KeycloakConditionType) bool {
	c := k.GetCondition(condition)
	return c != nil && c.Status == metav1.ConditionTrue
}

// IsDone indicates whether the realm import completed
func (r *KeycloakRealmImport) IsDone() bool {
	for _, c := range r.Status.Conditions {
		if c.Type == "Done" && c.Status == metav1.ConditionTrue {
			return true
		}
	}
	return false
}

// PodSelectorLabels returns the labels placed on server pods by the operator
func (k *Keycloak) PodSelectorLabels() map[string]string {
	return map[string]string{
		"app":                        "keycloak",
		"app.kubernetes.io/instance": k.Name,
	}
}
