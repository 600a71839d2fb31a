package utils

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	buildv1 "github.com/openshift/api/build/v1"
	imagev1 "github.com/openshift/api/image/v1"
	routev1 "github.com/openshift/api/route/v1"
	"gopkg.in/yaml.v2"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	kscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"

	amqv1beta1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/activemq/v1beta1"
	ispnv1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	ispnv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	kafkav1beta2 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/kafka/v1beta2"
	keycloakv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/keycloak/v2alpha1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// Scheme carries every API group the test suites touch
var Scheme = runtime.NewScheme()

func init() {
	ExpectNoError(kscheme.AddToScheme(Scheme))
	ExpectNoError(routev1.AddToScheme(Scheme))
	ExpectNoError(buildv1.AddToScheme(Scheme))
	ExpectNoError(imagev1.AddToScheme(Scheme))
	ExpectNoError(ispnv1.AddToScheme(Scheme))
	ExpectNoError(ispnv2alpha1.AddToScheme(Scheme))
	ExpectNoError(amqv1beta1.AddToScheme(Scheme))
	ExpectNoError(keycloakv2alpha1.AddToScheme(Scheme))
	ExpectNoError(kafkav1beta2.AddToScheme(Scheme))
	ExpectNoError(wildflyv1alpha1.AddToScheme(Scheme))
}

// TestKubernetes wraps the cluster facade with panic-on-error helpers so the
// tests read as straight-line code
type TestKubernetes struct {
	Kubernetes *kubernetes.Kubernetes
}

// NewTestKubernetes creates a new instance of TestKubernetes
func NewTestKubernetes(ctx string) *TestKubernetes {
	kubernetes, err := kubernetes.NewKubernetesFromLocalConfig(Scheme, ctx)
	ExpectNoError(err)
	return &TestKubernetes{Kubernetes: kubernetes}
}

// NewNamespace creates a new namespace
func (k TestKubernetes) NewNamespace(namespace string) {
	fmt.Printf("Create namespace %s\n", namespace)
	obj := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name: namespace,
		},
	}

	err := k.Kubernetes.Client.Get(context.TODO(), types.NamespacedName{Name: namespace}, obj)
	if err != nil && k8serrors.IsNotFound(err) {
		err = k.Kubernetes.Client.Create(context.TODO(), obj)
		ExpectNoError(err)
		return
	}
	ExpectNoError(err)
}

// DeleteNamespace deletes a namespace and waits until it is gone
func (k TestKubernetes) DeleteNamespace(namespace string) {
	fmt.Printf("Delete namespace %s\n", namespace)
	obj := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name: namespace,
		},
	}
	err := k.Kubernetes.Client.Delete(context.TODO(), obj, DeleteOpts...)
	ExpectMaybeNotFound(err)

	err = wait.New(func() (bool, error) {
		err := k.Kubernetes.Client.Get(context.TODO(), types.NamespacedName{Name: namespace}, obj)
		if err != nil && k8serrors.IsNotFound(err) {
			return true, nil
		}
		return false, nil
	}).
		Timeout(MaxWaitTimeout).
		Interval(DefaultPollPeriod).
		Reason(fmt.Sprintf("namespace %s to be removed", namespace)).
		WaitFor(context.TODO())
	ExpectNoError(err)
}

// LogOnPanic prints pod logs and resource dumps when the test panicked. The
// suite fixtures deployed by TestMain stay in place for the following tests,
// CleanNamespace removes them once the whole suite finished.
func (k TestKubernetes) LogOnPanic(namespace string, podLabels map[string]string) {
	panicVal := recover()
	if panicVal == nil {
		return
	}
	if podLabels != nil {
		k.PrintAllResources(namespace, &corev1.PodList{}, podLabels)
	}
	// Throw the recovered panic values so the tests fail as expected
	panic(panicVal)
}

// CleanNamespace removes every custom resource the suites deploy from the
// namespace, then waits until the labelled pods are gone. Kinds whose CRD the
// cluster does not serve are skipped.
func (k TestKubernetes) CleanNamespace(namespace string, podLabels map[string]string) {
	ctx := context.TODO()
	opts := []client.DeleteAllOfOption{
		client.InNamespace(namespace),
	}
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &ispnv2alpha1.Cache{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &ispnv1.Infinispan{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &amqv1beta1.ActiveMQArtemisAddress{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &amqv1beta1.ActiveMQArtemis{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &wildflyv1alpha1.WildFlyServer{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &keycloakv2alpha1.KeycloakRealmImport{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &keycloakv2alpha1.Keycloak{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &kafkav1beta2.KafkaTopic{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &kafkav1beta2.KafkaUser{}, opts...))
	ExpectMaybeNotFound(k.Kubernetes.Client.DeleteAllOf(ctx, &kafkav1beta2.Kafka{}, opts...))
	if podLabels != nil {
		k.WaitForPods(0, 3*SinglePodTimeout, namespace, podLabels)
	}
}

// PrintAllResources dumps the listed resources as YAML, pods with their logs
func (k TestKubernetes) PrintAllResources(namespace string, list client.ObjectList, set labels.Set) {
	if err := k.Kubernetes.ResourcesList(namespace, set, list, context.TODO()); err != nil {
		LogError(err)
	}

	unstructuredResource, err := runtime.DefaultUnstructuredConverter.ToUnstructured(list)
	LogError(err)
	unstructuredResourceList := unstructured.UnstructuredList{}
	unstructuredResourceList.SetUnstructuredContent(unstructuredResource)

	for _, item := range unstructuredResourceList.Items {
		if strings.Contains(item.GetKind(), "Pod") {
			fmt.Println(strings.Repeat("-", 30))
			log, err := k.Kubernetes.Logs(item.GetName(), namespace, context.TODO())
			LogError(err)
			fmt.Printf("%s", log)
		}

		out, err := yaml.Marshal(item.Object)
		LogError(err)
		fmt.Println(strings.Repeat("-", 30))
		fmt.Println(string(out))
	}
}

func (k TestKubernetes) Create(obj client.Object) {
	ExpectNoError(k.Kubernetes.Client.Create(context.TODO(), obj))
}

// DeleteResource deletes the resource and waits until all the pods matching
// the selector are gone
func (k TestKubernetes) DeleteResource(namespace string, selector labels.Set, obj client.Object) {
	err := k.Kubernetes.Client.Delete(context.TODO(), obj, DeleteOpts...)
	ExpectMaybeNotFound(err)
	k.WaitForPods(0, SinglePodTimeout, namespace, selector)
}

// WaitForPods blocks until exactly required ready pods match the selector
func (k TestKubernetes) WaitForPods(required int, timeout time.Duration, namespace string, selector labels.Set) {
	err := wait.New(func() (bool, error) {
		podList := &corev1.PodList{}
		if err := k.Kubernetes.ResourcesList(namespace, selector, podList, context.TODO()); err != nil {
			return false, nil
		}
		if len(podList.Items) != required {
			return false, nil
		}
		if required == 0 {
			return true, nil
		}
		return kubernetes.AreAllPodsReady(podList), nil
	}).
		Timeout(timeout).
		Interval(DefaultPollPeriod).
		Reason(fmt.Sprintf("%d ready pod(s) matching %v", required, selector)).
		WaitFor(context.TODO())
	ExpectNoError(err)
}

// SkipUnlessSupported skips the test when the cluster does not serve the
// operator API group the test depends on beyond the ones its suite requires
func (k TestKubernetes) SkipUnlessSupported(t *testing.T, groupVersion, kind string) {
	supported, err := k.Kubernetes.IsGroupVersionSupported(groupVersion, kind)
	ExpectNoError(err)
	if !supported {
		t.Skipf("%s %s is not supported by the cluster", groupVersion, kind)
	}
}

// RequireOperator ends the suite before TestMain deploys anything when the
// cluster does not serve the operator API group the suite runs against
func (k TestKubernetes) RequireOperator(groupVersion, kind string) {
	supported, err := k.Kubernetes.IsGroupVersionSupported(groupVersion, kind)
	ExpectNoError(err)
	if !supported {
		fmt.Printf("Skipping suite, %s %s is not served by the cluster\n", groupVersion, kind)
		os.Exit(0)
	}
}

// TestName returns the test name without the parent test prefix
func TestName(t *testing.T) string {
	return regexp.MustCompile(".*/").ReplaceAllString(t.Name(), "")
}
