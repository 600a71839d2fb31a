package oidc

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	keycloakv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/keycloak/v2alpha1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/provision"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

var (
	testKube *utils.TestKubernetes

	sso        *keycloakService
	wildflyApp *wildflyOidcApplication

	postgresProvisioner *provision.PostgresProvisioner
	ssoProvisioner      *provision.KeycloakProvisioner
	wildflyProvisioner  *provision.WildflyProvisioner
)

func TestMain(m *testing.M) {
	logf.SetLogger(utils.NewLogger())
	testKube = utils.NewTestKubernetes("")
	testKube.RequireOperator(keycloakv2alpha1.GroupVersion.String(), "Keycloak")
	testKube.RequireOperator(wildflyv1alpha1.GroupVersion.String(), "WildFlyServer")

	postgresProvisioner = &provision.PostgresProvisioner{
		Kubernetes: testKube.Kubernetes,
		Namespace:  utils.Namespace,
		DBName:     postgresName,
		Database:   postgresDatabase,
		Username:   postgresUser,
		Password:   postgresPassword,
		Timeout:    utils.SinglePodTimeout,
	}

	var err error
	sso, err = newKeycloakService(postgresProvisioner)
	utils.ExpectNoError(err)
	wildflyApp = newWildflyOidcApplication(1)

	ssoProvisioner = &provision.KeycloakProvisioner{
		Kubernetes:  testKube.Kubernetes,
		Application: sso,
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
	utils.ExpectNoError(postgresProvisioner.Deploy(ctx))
	utils.ExpectNoError(ssoProvisioner.Deploy(ctx))
	utils.ExpectNoError(wildflyProvisioner.Deploy(ctx))

	code := m.Run()

	if utils.CleanupOnFinish {
		utils.ExpectNoError(wildflyProvisioner.Undeploy(ctx))
		utils.ExpectNoError(ssoProvisioner.Undeploy(ctx))
		utils.ExpectNoError(postgresProvisioner.Undeploy(ctx))
		testKube.CleanNamespace(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
		testKube.DeleteNamespace(utils.Namespace)
	}
	os.Exit(code)
}

// securedPageURL is the deployment resource requiring the user role
func securedPageURL(ctx context.Context) (string, error) {
	base, err := wildflyProvisioner.URL(ctx)
	if err != nil {
		return "", err
	}
	return base + "/secured", nil
}

// waitUntilApplicationIsReachable waits for the unsecured page of the
// deployment to answer, the build and the first boot take a while
func waitUntilApplicationIsReachable(t *testing.T, ctx context.Context) {
	base, err := wildflyProvisioner.URL(ctx)
	utils.ExpectNoError(err)
	unsecuredURL := base + "/unsecured"

	client := &http.Client{}
	err = wait.New(func() (bool, error) {
		rsp, err := client.Get(unsecuredURL)
		if err != nil {
			return false, nil
		}
		defer rsp.Body.Close()
		return rsp.StatusCode == http.StatusOK, nil
	}).
		Timeout(utils.RouteTimeout).
		Interval(utils.DefaultPollPeriod).
		Reason(fmt.Sprintf("waiting for %s to return OK", unsecuredURL)).
		WaitFor(ctx)
	if err != nil {
		t.Fatalf("Application %s is not reachable: %v", wildflyApp.Name(), err)
	}
}
