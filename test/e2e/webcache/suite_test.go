package webcache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	ispnv1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/provision"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

var (
	testKube *utils.TestKubernetes

	infinispan         *infinispanService
	wildflyApp         *wildflySessionApplication
	ispnProvisioner    *provision.InfinispanProvisioner
	wildflyProvisioner *provision.WildflyProvisioner
)

// replicationPause gives the session stores time to replicate the value
// before a pod is terminated ungracefully
const replicationPause = 30 * time.Second

func TestMain(m *testing.M) {
	logf.SetLogger(utils.NewLogger())
	testKube = utils.NewTestKubernetes("")
	testKube.RequireOperator(ispnv1.GroupVersion.String(), "Infinispan")
	testKube.RequireOperator(wildflyv1alpha1.GroupVersion.String(), "WildFlyServer")

	infinispan = newInfinispanService(2)
	wildflyApp = newWildflySessionApplication(utils.Namespace, 2)
	ispnProvisioner = &provision.InfinispanProvisioner{
		Kubernetes:  testKube.Kubernetes,
		Application: infinispan,
		Namespace:   utils.Namespace,
		Timeout:     utils.TestTimeout,
	}
	wildflyProvisioner = &provision.WildflyProvisioner{
		Kubernetes:   testKube.Kubernetes,
		Application:  wildflyApp,
		Namespace:    utils.Namespace,
		Timeout:      utils.TestTimeout,
		BuilderImage: utils.WildflyBuilderImage,
	}

	ctx := context.Background()
	testKube.NewNamespace(utils.Namespace)
	// KUBE_PING requires this permission, otherwise clustering does not form
	// and an invalidation-cache cannot work
	utils.ExpectNoError(testKube.Kubernetes.AddRoleToServiceAccount("view", "default", utils.Namespace, ctx))

	utils.ExpectNoError(ispnProvisioner.Deploy(ctx))
	utils.ExpectNoError(wildflyProvisioner.Deploy(ctx))

	code := m.Run()

	if utils.CleanupOnFinish {
		utils.ExpectNoError(wildflyProvisioner.Undeploy(ctx))
		utils.ExpectNoError(ispnProvisioner.Undeploy(ctx))
		testKube.CleanNamespace(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
		testKube.DeleteNamespace(utils.Namespace)
	}
	os.Exit(code)
}

// setInitialClustersReplicas restores the topology the tests start from
func setInitialClustersReplicas(t *testing.T, ctx context.Context) {
	t.Log("Restoring initial cluster replicas")
	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 2, true))
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 2, true))
}

// shutDownClusters scales both services to zero so each test starts clean.
// Infinispan clusters must restart with the replica count they had before
// shutdown, the scale back up happens in setInitialClustersReplicas.
func shutDownClusters(t *testing.T, ctx context.Context) {
	t.Log("Shutting down clusters")
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 0, true))
	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 0, true))
}

func applicationURL(t *testing.T, ctx context.Context) string {
	url, err := wildflyProvisioner.URL(ctx)
	utils.ExpectNoError(err)
	t.Logf("Application URL: %s", url)
	return url
}

func valueURL(baseURL string, value int) string {
	return fmt.Sprintf("%s?value=%d", baseURL, value)
}
