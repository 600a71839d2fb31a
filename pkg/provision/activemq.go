package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/apis/activemq/v1beta1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// ActiveMQProvisioner drives the ActiveMQ Artemis operator. Deploy creates
// the broker CR plus the addresses of the descriptor and waits for all broker
// pods to report ready through the CR status.
type ActiveMQProvisioner struct {
	Kubernetes  *kubernetes.Kubernetes
	Application application.ActiveMQApplication
	Namespace   string
	Timeout     time.Duration
}

var _ Provisioner = (*ActiveMQProvisioner)(nil)

func (p *ActiveMQProvisioner) Name() string {
	return p.Application.Name()
}

func (p *ActiveMQProvisioner) timeout() time.Duration {
	if p.Timeout == 0 {
		return DefaultDeployTimeout
	}
	return p.Timeout
}

func (p *ActiveMQProvisioner) replicas() int32 {
	plan := p.Application.ActiveMQArtemis().Spec.DeploymentPlan
	if plan.Size == nil {
		// Operator default for a plan without an explicit size
		return 1
	}
	return *plan.Size
}

func (p *ActiveMQProvisioner) Deploy(ctx context.Context) error {
	if provider, ok := p.Application.(application.SecretsProvider); ok {
		if err := createSecrets(ctx, p.Kubernetes, p.Namespace, provider.Secrets()); err != nil {
			return err
		}
	}

	broker := p.Application.ActiveMQArtemis()
	if err := createOrFail(ctx, p.Kubernetes, broker, p.Namespace); err != nil {
		return err
	}
	for _, address := range p.Application.Addresses() {
		if err := createOrFail(ctx, p.Kubernetes, address, p.Namespace); err != nil {
			return err
		}
	}
	return p.waitForBrokerPods(ctx, p.replicas())
}

func (p *ActiveMQProvisioner) Undeploy(ctx context.Context) error {
	for _, address := range p.Application.Addresses() {
		address.Namespace = p.Namespace
		if err := deleteIgnoreNotFound(ctx, p.Kubernetes, address); err != nil {
			return err
		}
	}
	broker := p.Application.ActiveMQArtemis()
	broker.Namespace = p.Namespace
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, broker); err != nil {
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
	return waitForPods(ctx, p.Kubernetes, p.Namespace, broker.PodSelectorLabels(), 0, p.timeout())
}

func (p *ActiveMQProvisioner) Scale(ctx context.Context, replicas int32, waitForReady bool) error {
	broker := &v1beta1.ActiveMQArtemis{}
	if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, broker); err != nil {
		return err
	}
	if err := updateWithRetry(ctx, p.Kubernetes, broker, func() {
		broker.Spec.DeploymentPlan.Size = &replicas
	}); err != nil {
		return err
	}
	if !waitForReady {
		return nil
	}
	return p.waitForBrokerPods(ctx, replicas)
}

func (p *ActiveMQProvisioner) Pods(ctx context.Context) ([]corev1.Pod, error) {
	return podsBySelector(ctx, p.Kubernetes, p.Namespace, p.Application.ActiveMQArtemis().PodSelectorLabels())
}

// URL resolves the management console route of the first broker pod. The
// messaging acceptors are exercised from inside the cluster, the console is
// the only endpoint the operator exposes over a route.
func (p *ActiveMQProvisioner) URL(ctx context.Context) (string, error) {
	return serviceURL(ctx, p.Kubernetes, p.Namespace, fmt.Sprintf("%s-wconsj-0-svc-rte", p.Name()), "http")
}

// waitForBrokerPods blocks until the CR status lists the expected number of
// ready pods and the pods themselves report ready
func (p *ActiveMQProvisioner) waitForBrokerPods(ctx context.Context, replicas int32) error {
	broker := p.Application.ActiveMQArtemis()
	err := wait.New(func() (bool, error) {
		live := &v1beta1.ActiveMQArtemis{}
		if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, live); err != nil {
			return false, nil
		}
		return len(live.Status.PodStatus.Ready) == int(replicas), nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("broker '%s' to report %d ready pod(s)", p.Name(), replicas)).
		Logger(log).
		WaitFor(ctx)
	if err != nil {
		return err
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, broker.PodSelectorLabels(), int(replicas), p.timeout())
}
