package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/apis/keycloak/v2alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// KeycloakProvisioner drives the Keycloak operator. Deploy creates the
// Keycloak CR, waits for the Ready condition, then imports the realms of the
// descriptor and waits for each import job to finish.
type KeycloakProvisioner struct {
	Kubernetes  *kubernetes.Kubernetes
	Application application.KeycloakApplication
	Namespace   string
	Timeout     time.Duration
}

var _ Provisioner = (*KeycloakProvisioner)(nil)

func (p *KeycloakProvisioner) Name() string {
	return p.Application.Name()
}

func (p *KeycloakProvisioner) timeout() time.Duration {
	if p.Timeout == 0 {
		return DefaultDeployTimeout
	}
	return p.Timeout
}

func (p *KeycloakProvisioner) Deploy(ctx context.Context) error {
	if provider, ok := p.Application.(application.SecretsProvider); ok {
		if err := createSecrets(ctx, p.Kubernetes, p.Namespace, provider.Secrets()); err != nil {
			return err
		}
	}

	keycloak := p.Application.Keycloak()
	if err := createOrFail(ctx, p.Kubernetes, keycloak, p.Namespace); err != nil {
		return err
	}
	if err := p.waitForReady(ctx, keycloak.Spec.Instances); err != nil {
		return err
	}

	for _, realmImport := range p.Application.RealmImports() {
		if err := createOrFail(ctx, p.Kubernetes, realmImport, p.Namespace); err != nil {
			return err
		}
		if err := p.waitForRealmImport(ctx, realmImport.Name); err != nil {
			return err
		}
	}
	// Realm imports restart the server, wait for it to settle again
	return p.waitForReady(ctx, keycloak.Spec.Instances)
}

func (p *KeycloakProvisioner) Undeploy(ctx context.Context) error {
	for _, realmImport := range p.Application.RealmImports() {
		realmImport.Namespace = p.Namespace
		if err := deleteIgnoreNotFound(ctx, p.Kubernetes, realmImport); err != nil {
			return err
		}
	}
	keycloak := p.Application.Keycloak()
	keycloak.Namespace = p.Namespace
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, keycloak); err != nil {
		return err
	}
	if provider, ok := p.Application.(application.SecretsProvider); ok {
		for _, secret := range provider.Secrets() {
			secret.Namespace = p.Namespace
			if err := deleteIgnoreNotFound(ctx, p.Kubernetes, secret); err != nil {
				return err
			}
		}
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, keycloak.PodSelectorLabels(), 0, p.timeout())
}

func (p *KeycloakProvisioner) Scale(ctx context.Context, replicas int32, waitForReady bool) error {
	keycloak := &v2alpha1.Keycloak{}
	if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, keycloak); err != nil {
		return err
	}
	if err := updateWithRetry(ctx, p.Kubernetes, keycloak, func() {
		keycloak.Spec.Instances = int64(replicas)
	}); err != nil {
		return err
	}
	if !waitForReady {
		return nil
	}
	if replicas == 0 {
		return waitForPods(ctx, p.Kubernetes, p.Namespace, keycloak.PodSelectorLabels(), 0, p.timeout())
	}
	return p.waitForReady(ctx, int64(replicas))
}

func (p *KeycloakProvisioner) Pods(ctx context.Context) ([]corev1.Pod, error) {
	return podsBySelector(ctx, p.Kubernetes, p.Namespace, p.Application.Keycloak().PodSelectorLabels())
}

// URL resolves the externally reachable base URL of the server. Admin and
// realm endpoints hang off this base.
func (p *KeycloakProvisioner) URL(ctx context.Context) (string, error) {
	scheme := "https"
	if http := p.Application.Keycloak().Spec.HTTP; http != nil && http.HTTPEnabled {
		scheme = "http"
	}
	return serviceURL(ctx, p.Kubernetes, p.Namespace, fmt.Sprintf("%s-service", p.Name()), scheme)
}

func (p *KeycloakProvisioner) waitForReady(ctx context.Context, instances int64) error {
	keycloak := p.Application.Keycloak()
	err := wait.New(func() (bool, error) {
		live := &v2alpha1.Keycloak{}
		if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, live); err != nil {
			return false, nil
		}
		if live.IsConditionTrue(v2alpha1.ConditionHasErrors) {
			return false, fmt.Errorf("keycloak '%s' reports errors: %s", p.Name(), live.GetCondition(v2alpha1.ConditionHasErrors).Message)
		}
		return live.IsConditionTrue(v2alpha1.ConditionReady), nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("keycloak '%s' to become ready", p.Name())).
		Logger(log).
		WaitFor(ctx)
	if err != nil {
		return err
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, keycloak.PodSelectorLabels(), int(instances), p.timeout())
}

func (p *KeycloakProvisioner) waitForRealmImport(ctx context.Context, name string) error {
	return wait.New(func() (bool, error) {
		realmImport := &v2alpha1.KeycloakRealmImport{}
		if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: name}, realmImport); err != nil {
			return false, nil
		}
		return realmImport.IsDone(), nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("realm import '%s' to complete", name)).
		Logger(log).
		WaitFor(ctx)
}
