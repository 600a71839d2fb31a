package saml

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/jboss-intersmash/intersmash-tests/pkg/keycloak"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const clientRegisteredMessage = "INFO Registered saml client for module"

// Principals issued by the adapter look like G-<uuid>
var principalPattern = regexp.MustCompile(`^G-[a-zA-Z0-9\-]{36}$`)

// TestSamlClientRegistered verifies the launch script registered the SAML
// client against the realm before the server started serving.
func TestSamlClientRegistered(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	pods, err := wildflyProvisioner.Pods(ctx)
	utils.ExpectNoError(err)
	if len(pods) == 0 {
		t.Fatal("Expected at least one application pod")
	}
	logs, err := testKube.Kubernetes.Logs(pods[0].Name, utils.Namespace, ctx)
	utils.ExpectNoError(err)
	if !strings.Contains(logs, clientRegisteredMessage) {
		t.Fatalf("Expected %q in the logs of pod %s", clientRegisteredMessage, pods[0].Name)
	}
}

// TestAccessOk authenticates a user carrying the required role and checks
// the servlet and the EJB behind it both resolve the same kind of principal.
func TestAccessOk(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	securedURL, err := securedPageURL(ctx)
	utils.ExpectNoError(err)

	client, err := keycloak.NewClient()
	utils.ExpectNoError(err)
	rsp, err := client.Get(securedURL)
	utils.ExpectNoError(err)
	defer rsp.Body.Close()
	body, err := io.ReadAll(rsp.Body)
	utils.ExpectNoError(err)
	if !keycloak.ContainsRealm(string(body), realmName) {
		t.Fatalf("Login page does not belong to realm %s", realmName)
	}

	page := login(t, ctx, userName, userPassword)
	if !strings.Contains(page.URL, "profile.jsp") {
		t.Fatalf("Expected to land on the secured page after login, got %s", page.URL)
	}

	for _, id := range []string{"username", "usernameEjb"} {
		principal, err := keycloak.ElementTextByID(page.Body, id)
		utils.ExpectNoError(err)
		if !principalPattern.MatchString(principal) {
			t.Fatalf("Element %q holds %q, expected a generated principal", id, principal)
		}
	}
}

// TestForbidden authenticates a user the realm knows but whose role does not
// grant access to the secured page.
func TestForbidden(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	page := login(t, ctx, anotherUserName, anotherUserPassword)
	if !strings.Contains(strings.ToLower(page.Body), "forbidden") {
		t.Fatalf("Expected the request to be forbidden, got status %d", page.StatusCode)
	}
	if page.StatusCode == http.StatusOK && strings.Contains(page.URL, "profile.jsp") {
		t.Fatalf("User %s must not reach the secured page", anotherUserName)
	}
}

func login(t *testing.T, ctx context.Context, username, password string) *keycloak.Page {
	t.Helper()
	securedURL, err := securedPageURL(ctx)
	utils.ExpectNoError(err)

	client, err := keycloak.NewClient()
	utils.ExpectNoError(err)
	page, err := client.RequestSecuredPageAndLogin(securedURL, username, password)
	utils.ExpectNoError(err)
	return page
}
