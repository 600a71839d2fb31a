package kubernetes

import (
	"context"
	"fmt"

	rbacv1 "k8s.io/api/rbac/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AddRoleToServiceAccount binds the named cluster role to a service account in the
// namespace. Clustered application servers need the "view" role on the "default"
// account so that KUBE_PING can list the pods of their cluster.
func (k Kubernetes) AddRoleToServiceAccount(role, serviceAccount, namespace string, ctx context.Context) error {
	binding := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      fmt.Sprintf("%s-%s", role, serviceAccount),
			Namespace: namespace,
		},
		Subjects: []rbacv1.Subject{{
			Kind:      rbacv1.ServiceAccountKind,
			Name:      serviceAccount,
			Namespace: namespace,
		}},
		RoleRef: rbacv1.RoleRef{
			APIGroup: rbacv1.GroupName,
			Kind:     "ClusterRole",
			Name:     role,
		},
	}
	if err := k.Client.Create(ctx, binding); err != nil && !errors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

// GrantRoleToServiceAccount creates a namespaced role with the given rules
// and binds it to a service account. The SAML adapter needs the "default"
// account to list routes so it can register its client with the right URLs.
func (k Kubernetes) GrantRoleToServiceAccount(roleName, serviceAccount, namespace string, rules []rbacv1.PolicyRule, ctx context.Context) error {
	role := &rbacv1.Role{
		ObjectMeta: metav1.ObjectMeta{
			Name:      roleName,
			Namespace: namespace,
		},
		Rules: rules,
	}
	if err := k.Client.Create(ctx, role); err != nil && !errors.IsAlreadyExists(err) {
		return err
	}
	binding := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      fmt.Sprintf("%s-%s", roleName, serviceAccount),
			Namespace: namespace,
		},
		Subjects: []rbacv1.Subject{{
			Kind:      rbacv1.ServiceAccountKind,
			Name:      serviceAccount,
			Namespace: namespace,
		}},
		RoleRef: rbacv1.RoleRef{
			APIGroup: rbacv1.GroupName,
			Kind:     "Role",
			Name:     roleName,
		},
	}
	if err := k.Client.Create(ctx, binding); err != nil && !errors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

// RemoveRoleFromServiceAccount deletes the binding created by AddRoleToServiceAccount
func (k Kubernetes) RemoveRoleFromServiceAccount(role, serviceAccount, namespace string, ctx context.Context) error {
	binding := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      fmt.Sprintf("%s-%s", role, serviceAccount),
			Namespace: namespace,
		},
	}
	if err := k.Client.Delete(ctx, binding); err != nil && !errors.IsNotFound(err) {
		return err
	}
	return nil
}
