package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/apis/kafka/v1beta2"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// KafkaProvisioner drives the Strimzi cluster operator. Deploy creates the
// Kafka CR plus the topics and users of the descriptor and waits for the
// cluster Ready condition.
type KafkaProvisioner struct {
	Kubernetes  *kubernetes.Kubernetes
	Application application.KafkaApplication
	Namespace   string
	Timeout     time.Duration
}

var _ Provisioner = (*KafkaProvisioner)(nil)

func (p *KafkaProvisioner) Name() string {
	return p.Application.Name()
}

func (p *KafkaProvisioner) timeout() time.Duration {
	if p.Timeout == 0 {
		return DefaultDeployTimeout
	}
	return p.Timeout
}

// brokerSelectorLabels matches the broker pods Strimzi creates for the cluster
func (p *KafkaProvisioner) brokerSelectorLabels() map[string]string {
	return map[string]string{
		"strimzi.io/cluster": p.Name(),
		"strimzi.io/name":    fmt.Sprintf("%s-kafka", p.Name()),
	}
}

func (p *KafkaProvisioner) Deploy(ctx context.Context) error {
	kafka := p.Application.Kafka()
	if err := createOrFail(ctx, p.Kubernetes, kafka, p.Namespace); err != nil {
		return err
	}
	if err := p.waitForClusterReady(ctx); err != nil {
		return err
	}

	for _, topic := range p.Application.Topics() {
		if err := createOrFail(ctx, p.Kubernetes, topic, p.Namespace); err != nil {
			return err
		}
	}
	for _, user := range p.Application.Users() {
		if err := createOrFail(ctx, p.Kubernetes, user, p.Namespace); err != nil {
			return err
		}
		if err := p.waitForUserSecret(ctx, user.Name); err != nil {
			return err
		}
	}
	return nil
}

func (p *KafkaProvisioner) Undeploy(ctx context.Context) error {
	for _, user := range p.Application.Users() {
		user.Namespace = p.Namespace
		if err := deleteIgnoreNotFound(ctx, p.Kubernetes, user); err != nil {
			return err
		}
	}
	for _, topic := range p.Application.Topics() {
		topic.Namespace = p.Namespace
		if err := deleteIgnoreNotFound(ctx, p.Kubernetes, topic); err != nil {
			return err
		}
	}
	kafka := p.Application.Kafka()
	kafka.Namespace = p.Namespace
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, kafka); err != nil {
		return err
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, map[string]string{"strimzi.io/cluster": p.Name()}, 0, p.timeout())
}

func (p *KafkaProvisioner) Scale(ctx context.Context, replicas int32, waitForReady bool) error {
	kafka := &v1beta2.Kafka{}
	if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, kafka); err != nil {
		return err
	}
	if err := updateWithRetry(ctx, p.Kubernetes, kafka, func() {
		kafka.Spec.Kafka.Replicas = replicas
	}); err != nil {
		return err
	}
	if !waitForReady {
		return nil
	}
	if err := waitForPods(ctx, p.Kubernetes, p.Namespace, p.brokerSelectorLabels(), int(replicas), p.timeout()); err != nil {
		return err
	}
	return p.waitForClusterReady(ctx)
}

func (p *KafkaProvisioner) Pods(ctx context.Context) ([]corev1.Pod, error) {
	return podsBySelector(ctx, p.Kubernetes, p.Namespace, p.brokerSelectorLabels())
}

// URL returns the bootstrap servers address of the first external listener,
// or of the first listener at all when none is external
func (p *KafkaProvisioner) URL(ctx context.Context) (string, error) {
	kafka := &v1beta2.Kafka{}
	if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, kafka); err != nil {
		return "", err
	}
	for _, listener := range kafka.Spec.Kafka.Listeners {
		if listener.Type == v1beta2.ListenerTypeRoute || listener.Type == v1beta2.ListenerTypeNodePort {
			if servers := kafka.BootstrapServers(listener.Name); servers != "" {
				return servers, nil
			}
		}
	}
	if len(kafka.Status.Listeners) > 0 {
		return kafka.Status.Listeners[0].BootstrapServers, nil
	}
	return "", fmt.Errorf("kafka '%s' reports no listeners", p.Name())
}

func (p *KafkaProvisioner) waitForClusterReady(ctx context.Context) error {
	kafka := p.Application.Kafka()
	replicas := int(kafka.Spec.Kafka.Replicas)
	err := wait.New(func() (bool, error) {
		live := &v1beta2.Kafka{}
		if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, live); err != nil {
			return false, nil
		}
		return live.IsReady(), nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("kafka '%s' to become ready", p.Name())).
		Logger(log).
		WaitFor(ctx)
	if err != nil {
		return err
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, p.brokerSelectorLabels(), replicas, p.timeout())
}

// waitForUserSecret blocks until the user operator has generated the
// credentials secret for the user
func (p *KafkaProvisioner) waitForUserSecret(ctx context.Context, name string) error {
	return wait.New(func() (bool, error) {
		if _, err := p.Kubernetes.GetSecret(name, p.Namespace, ctx); err != nil {
			return false, nil
		}
		return true, nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("credentials secret of kafka user '%s'", name)).
		Logger(log).
		WaitFor(ctx)
}
