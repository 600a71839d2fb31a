package streaming

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	kafkav1beta2 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/kafka/v1beta2"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/provision"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

var (
	testKube *utils.TestKubernetes

	streams    *kafkaService
	wildflyApp *wildflyStreamingApplication

	kafkaProvisioner   *provision.KafkaProvisioner
	wildflyProvisioner *provision.WildflyProvisioner
)

func TestMain(m *testing.M) {
	logf.SetLogger(utils.NewLogger())
	testKube = utils.NewTestKubernetes("")
	testKube.RequireOperator(kafkav1beta2.GroupVersion.String(), "Kafka")
	testKube.RequireOperator(wildflyv1alpha1.GroupVersion.String(), "WildFlyServer")

	var err error
	streams, err = newKafkaService()
	utils.ExpectNoError(err)
	wildflyApp = newWildflyStreamingApplication(1)

	kafkaProvisioner = &provision.KafkaProvisioner{
		Kubernetes:  testKube.Kubernetes,
		Application: streams,
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
	utils.ExpectNoError(kafkaProvisioner.Deploy(ctx))
	utils.ExpectNoError(wildflyProvisioner.Deploy(ctx))

	code := m.Run()

	if utils.CleanupOnFinish {
		utils.ExpectNoError(wildflyProvisioner.Undeploy(ctx))
		utils.ExpectNoError(kafkaProvisioner.Undeploy(ctx))
		testKube.CleanNamespace(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
		testKube.DeleteNamespace(utils.Namespace)
	}
	os.Exit(code)
}

// waitUntilApplicationIsReachable waits for the root resource of the
// deployment to answer, the build and the first boot take a while
func waitUntilApplicationIsReachable(t *testing.T, ctx context.Context) {
	base, err := wildflyProvisioner.URL(ctx)
	utils.ExpectNoError(err)

	client := &http.Client{}
	err = wait.New(func() (bool, error) {
		rsp, err := client.Get(base)
		if err != nil {
			return false, nil
		}
		defer rsp.Body.Close()
		return rsp.StatusCode == http.StatusOK, nil
	}).
		Timeout(utils.RouteTimeout).
		Interval(utils.DefaultPollPeriod).
		Reason(fmt.Sprintf("waiting for %s to return OK", base)).
		WaitFor(ctx)
	if err != nil {
		t.Fatalf("Application %s is not reachable: %v", wildflyApp.Name(), err)
	}
}
