// Package provision deploys the product services the test suites run against.
// Each provisioner drives the product operator through its custom resources:
// it creates the CR plus supporting secrets and config maps, waits for the
// operator to bring the pods up, and exposes scaling and endpoint discovery.
package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

var log = logf.Log.WithName("provision")

const (
	// DefaultDeployTimeout bounds the wait for an operator to bring a service up
	DefaultDeployTimeout = 10 * time.Minute
	// DefaultScaleTimeout bounds the wait for a replica count change to settle
	DefaultScaleTimeout = 5 * time.Minute
	defaultPollPeriod   = time.Second
	maxPollPeriod       = 16 * time.Second
)

// Provisioner deploys one service and gives the tests control over its lifecycle
type Provisioner interface {
	// Name of the provisioned service, matches the CR name
	Name() string
	// Deploy creates the service resources and blocks until the service is ready
	Deploy(ctx context.Context) error
	// Undeploy deletes the service resources and blocks until the pods are gone
	Undeploy(ctx context.Context) error
	// Scale changes the replica count, optionally blocking until the new count is ready
	Scale(ctx context.Context, replicas int32, waitForReady bool) error
	// Pods returns the currently running pods of the service
	Pods(ctx context.Context) ([]corev1.Pod, error)
	// URL returns the externally reachable endpoint of the service
	URL(ctx context.Context) (string, error)
}

// createOrFail creates the object, failing on AlreadyExists so a test never
// silently picks up leftovers of a previous run
func createOrFail(ctx context.Context, k *kubernetes.Kubernetes, obj client.Object, namespace string) error {
	obj.SetNamespace(namespace)
	if err := k.Client.Create(ctx, obj); err != nil {
		return fmt.Errorf("unable to create %s '%s': %w", obj.GetObjectKind().GroupVersionKind().Kind, obj.GetName(), err)
	}
	return nil
}

func deleteIgnoreNotFound(ctx context.Context, k *kubernetes.Kubernetes, obj client.Object) error {
	if err := k.Client.Delete(ctx, obj); err != nil && !k8serrors.IsNotFound(err) {
		return err
	}
	return nil
}

func createSecrets(ctx context.Context, k *kubernetes.Kubernetes, namespace string, secrets []*corev1.Secret) error {
	for _, secret := range secrets {
		if err := createOrFail(ctx, k, secret, namespace); err != nil {
			return err
		}
	}
	return nil
}

func createConfigMaps(ctx context.Context, k *kubernetes.Kubernetes, namespace string, configMaps []*corev1.ConfigMap) error {
	for _, cm := range configMaps {
		if err := createOrFail(ctx, k, cm, namespace); err != nil {
			return err
		}
	}
	return nil
}

// podsBySelector lists pods matching the selector, sorted by name
func podsBySelector(ctx context.Context, k *kubernetes.Kubernetes, namespace string, selector map[string]string) ([]corev1.Pod, error) {
	podList := &corev1.PodList{}
	if err := k.ResourcesList(namespace, labels.Set(selector), podList, ctx); err != nil {
		return nil, err
	}
	kubernetes.SortPodsByName(podList)
	return podList.Items, nil
}

// waitForPods blocks until exactly expected pods matching the selector are ready
func waitForPods(ctx context.Context, k *kubernetes.Kubernetes, namespace string, selector map[string]string, expected int, timeout time.Duration) error {
	return wait.New(func() (bool, error) {
		podList := &corev1.PodList{}
		if err := k.ResourcesList(namespace, labels.Set(selector), podList, ctx); err != nil {
			return false, nil
		}
		if len(podList.Items) != expected {
			return false, nil
		}
		if expected == 0 {
			return true, nil
		}
		return kubernetes.AreAllPodsReady(podList), nil
	}).
		Timeout(timeout).
		// Pod readiness takes minutes, backing off keeps the pressure on the
		// API server bounded over the long deploy waits
		ExponentialBackoff(defaultPollPeriod, maxPollPeriod).
		Reason(fmt.Sprintf("%d ready pod(s) matching %v in namespace %s", expected, selector, namespace)).
		Logger(log).
		WaitFor(ctx)
}

// updateWithRetry applies mutate to the live object through CreateOrUpdate,
// retrying on conflict until the update lands or the poll times out. The
// object must already exist, a zero creation timestamp aborts the update.
func updateWithRetry(ctx context.Context, k *kubernetes.Kubernetes, obj client.Object, mutate func()) error {
	return wait.New(func() (bool, error) {
		_, updateErr := controllerutil.CreateOrUpdate(ctx, k.Client, obj, func() error {
			if creationTimestamp := obj.GetCreationTimestamp(); creationTimestamp.IsZero() {
				return k8serrors.NewNotFound(corev1.Resource("object"), obj.GetName())
			}
			mutate()
			return nil
		})
		if updateErr == nil {
			return true, nil
		}
		if k8serrors.IsConflict(updateErr) {
			return false, nil
		}
		return false, updateErr
	}).
		Interval(defaultPollPeriod).
		Reason(fmt.Sprintf("update of '%s' to be accepted", obj.GetName())).
		Logger(log).
		WaitFor(ctx)
}
