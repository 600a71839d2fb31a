package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	ctrlclient "sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	ispnv1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	ispnv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
)

const testNamespace = "utils-test"

func fakeTestKubernetes(t *testing.T, objs ...ctrlclient.Object) TestKubernetes {
	fakeClient := fake.NewClientBuilder().WithScheme(Scheme).WithObjects(objs...).Build()
	return TestKubernetes{Kubernetes: &kubernetes.Kubernetes{Client: fakeClient}}
}

func suiteInfinispan() *ispnv1.Infinispan {
	return &ispnv1.Infinispan{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "infinispan",
			Namespace: testNamespace,
			Labels:    map[string]string{"app": "datagrid"},
		},
	}
}

// The fixtures TestMain deploys must survive individual tests, only a panic
// triggers the log dump and nothing is deleted either way.
func TestLogOnPanicKeepsSuiteFixtures(t *testing.T) {
	k := fakeTestKubernetes(t, suiteInfinispan())

	k.LogOnPanic(testNamespace, map[string]string{"app": "datagrid"})

	live := &ispnv1.Infinispan{}
	err := k.Kubernetes.Client.Get(context.TODO(), types.NamespacedName{Namespace: testNamespace, Name: "infinispan"}, live)
	require.NoError(t, err)
}

func TestCleanNamespaceRemovesCustomResources(t *testing.T) {
	cache := &ispnv2alpha1.Cache{
		ObjectMeta: metav1.ObjectMeta{Name: "session-cache", Namespace: testNamespace},
	}
	k := fakeTestKubernetes(t, suiteInfinispan(), cache)

	k.CleanNamespace(testNamespace, map[string]string{"app": "datagrid"})

	err := k.Kubernetes.Client.Get(context.TODO(), types.NamespacedName{Namespace: testNamespace, Name: "infinispan"}, &ispnv1.Infinispan{})
	assert.True(t, k8serrors.IsNotFound(err))
	err = k.Kubernetes.Client.Get(context.TODO(), types.NamespacedName{Namespace: testNamespace, Name: "session-cache"}, &ispnv2alpha1.Cache{})
	assert.True(t, k8serrors.IsNotFound(err))
}

func TestExpectMaybeNotFound(t *testing.T) {
	assert.NotPanics(t, func() { ExpectMaybeNotFound(nil) })
	assert.NotPanics(t, func() {
		ExpectMaybeNotFound(k8serrors.NewNotFound(schema.GroupResource{Group: "infinispan.org", Resource: "infinispans"}, "infinispan"))
	})
	// Clusters without one of the operators do not serve its kinds at all
	assert.NotPanics(t, func() {
		ExpectMaybeNotFound(&meta.NoKindMatchError{
			GroupKind:        schema.GroupKind{Group: "kafka.strimzi.io", Kind: "Kafka"},
			SearchedVersions: []string{"v1beta2"},
		})
	})
	assert.Panics(t, func() { ExpectMaybeNotFound(errors.New("connection refused")) })
}
