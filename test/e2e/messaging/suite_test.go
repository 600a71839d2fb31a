package messaging

import (
	"context"
	"fmt"
	"os"
	"testing"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	amqv1beta1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/activemq/v1beta1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/keystore"
	"github.com/jboss-intersmash/intersmash-tests/pkg/provision"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

var (
	testKube *utils.TestKubernetes

	broker             *activeMQService
	wildflyApp         *wildflyJmsApplication
	amqProvisioner     *provision.ActiveMQProvisioner
	wildflyProvisioner *provision.WildflyProvisioner
)

func TestMain(m *testing.M) {
	logf.SetLogger(utils.NewLogger())
	testKube = utils.NewTestKubernetes("")
	testKube.RequireOperator(amqv1beta1.GroupVersion.String(), "ActiveMQArtemis")
	testKube.RequireOperator(wildflyv1alpha1.GroupVersion.String(), "WildFlyServer")

	// One certificate serves both sides, the broker keystore and the
	// truststore mounted into the application pods
	certificate, err := keystore.NewGenerator("").Generate(acceptorServiceName(), keyAlias, storePass, nil)
	utils.ExpectNoError(err)

	broker, err = newActiveMQService(certificate)
	utils.ExpectNoError(err)
	wildflyApp, err = newWildflyJmsApplication(certificate, 1)
	utils.ExpectNoError(err)

	amqProvisioner = &provision.ActiveMQProvisioner{
		Kubernetes:  testKube.Kubernetes,
		Application: broker,
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
	utils.ExpectNoError(amqProvisioner.Deploy(ctx))
	utils.ExpectNoError(wildflyProvisioner.Deploy(ctx))

	code := m.Run()

	if utils.CleanupOnFinish {
		utils.ExpectNoError(wildflyProvisioner.Undeploy(ctx))
		utils.ExpectNoError(amqProvisioner.Undeploy(ctx))
		testKube.CleanNamespace(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
		testKube.DeleteNamespace(utils.Namespace)
	}
	os.Exit(code)
}

// servletURL resolves the route of the JMS test servlet
func servletURL(ctx context.Context) (string, error) {
	base, err := wildflyProvisioner.URL(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/jms-test", base), nil
}
