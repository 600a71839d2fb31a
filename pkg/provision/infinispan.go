package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// InfinispanProvisioner drives the Infinispan operator. Deploy creates the
// cluster CR plus any caches of the descriptor and waits for the cluster to
// report WellFormed.
type InfinispanProvisioner struct {
	Kubernetes  *kubernetes.Kubernetes
	Application application.InfinispanApplication
	Namespace   string
	// Timeout bounds Deploy and Scale, DefaultDeployTimeout when zero
	Timeout time.Duration
}

var _ Provisioner = (*InfinispanProvisioner)(nil)

func (p *InfinispanProvisioner) Name() string {
	return p.Application.Name()
}

func (p *InfinispanProvisioner) timeout() time.Duration {
	if p.Timeout == 0 {
		return DefaultDeployTimeout
	}
	return p.Timeout
}

func (p *InfinispanProvisioner) Deploy(ctx context.Context) error {
	if provider, ok := p.Application.(application.SecretsProvider); ok {
		if err := createSecrets(ctx, p.Kubernetes, p.Namespace, provider.Secrets()); err != nil {
			return err
		}
	}

	ispn := p.Application.Infinispan()
	if err := createOrFail(ctx, p.Kubernetes, ispn, p.Namespace); err != nil {
		return err
	}

	if err := p.waitForCondition(ctx, v1.ConditionWellFormed); err != nil {
		return err
	}
	if err := waitForPods(ctx, p.Kubernetes, p.Namespace, ispn.PodSelectorLabels(), int(ispn.Spec.Replicas), p.timeout()); err != nil {
		return err
	}

	for _, cache := range p.Application.Caches() {
		if err := createOrFail(ctx, p.Kubernetes, cache, p.Namespace); err != nil {
			return err
		}
	}
	return p.waitForCachesReady(ctx)
}

func (p *InfinispanProvisioner) Undeploy(ctx context.Context) error {
	for _, cache := range p.Application.Caches() {
		cache.Namespace = p.Namespace
		if err := deleteIgnoreNotFound(ctx, p.Kubernetes, cache); err != nil {
			return err
		}
	}
	ispn := p.Application.Infinispan()
	ispn.Namespace = p.Namespace
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, ispn); err != nil {
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
	return waitForPods(ctx, p.Kubernetes, p.Namespace, ispn.PodSelectorLabels(), 0, p.timeout())
}

// Scale changes the cluster replica count through the CR. Scaling to zero
// triggers a graceful shutdown, which the operator reports through the
// GracefulShutdown condition rather than WellFormed.
func (p *InfinispanProvisioner) Scale(ctx context.Context, replicas int32, waitForReady bool) error {
	ispn := &v1.Infinispan{}
	if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, ispn); err != nil {
		return err
	}
	if err := updateWithRetry(ctx, p.Kubernetes, ispn, func() {
		ispn.Spec.Replicas = replicas
	}); err != nil {
		return err
	}
	if !waitForReady {
		return nil
	}
	if replicas == 0 {
		if err := p.waitForCondition(ctx, v1.ConditionGracefulShutdown); err != nil {
			return err
		}
	} else {
		if err := p.waitForCondition(ctx, v1.ConditionWellFormed); err != nil {
			return err
		}
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, ispn.PodSelectorLabels(), int(replicas), p.timeout())
}

func (p *InfinispanProvisioner) Pods(ctx context.Context) ([]corev1.Pod, error) {
	return podsBySelector(ctx, p.Kubernetes, p.Namespace, p.Application.Infinispan().PodSelectorLabels())
}

// URL resolves the external endpoint of the cluster through the service the
// operator exposes for it
func (p *InfinispanProvisioner) URL(ctx context.Context) (string, error) {
	ispn := p.Application.Infinispan()
	return serviceURL(ctx, p.Kubernetes, p.Namespace, ispn.GetServiceExternalName(), ispn.GetEndpointScheme())
}

func (p *InfinispanProvisioner) waitForCondition(ctx context.Context, condition v1.ConditionType) error {
	return wait.New(func() (bool, error) {
		ispn := &v1.Infinispan{}
		if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, ispn); err != nil {
			return false, nil
		}
		return ispn.IsConditionTrue(condition), nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("infinispan '%s' condition %s", p.Name(), condition)).
		Logger(log).
		WaitFor(ctx)
}

func (p *InfinispanProvisioner) waitForCachesReady(ctx context.Context) error {
	for _, cache := range p.Application.Caches() {
		name := cache.Name
		err := wait.New(func() (bool, error) {
			c := &v2alpha1.Cache{}
			if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: name}, c); err != nil {
				return false, nil
			}
			return c.IsReady(), nil
		}).
			Timeout(p.timeout()).
			Reason(fmt.Sprintf("cache '%s' to be ready", name)).
			Logger(log).
			WaitFor(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
