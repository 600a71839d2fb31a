package oidc

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jboss-intersmash/intersmash-tests/pkg/keycloak"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const (
	authenticatedMessage = "The user is authenticated"
	forbiddenMessage     = "Forbidden"
)

// TestRedirectedToLoginPage verifies the secured page hands unauthenticated
// requests over to the login page of the expected realm.
func TestRedirectedToLoginPage(t *testing.T) {
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
	if rsp.StatusCode != http.StatusOK {
		t.Fatalf("Expected the login page, got status %d", rsp.StatusCode)
	}
	body, err := io.ReadAll(rsp.Body)
	utils.ExpectNoError(err)

	if _, err := keycloak.ParseLoginForm(rsp.Request.URL.String(), strings.NewReader(string(body))); err != nil {
		t.Fatalf("Expected the Keycloak login page: %v", err)
	}
	if !keycloak.ContainsRealm(string(body), realmName) {
		t.Fatalf("Login page does not belong to realm %s", realmName)
	}
}

// TestLoginSuccess authenticates a user carrying the required role, the
// request must come back authorized with the protected content.
func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	page := login(t, ctx, userWithValidRole, passwordWithValidRole)
	if page.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d after login, got %d", http.StatusOK, page.StatusCode)
	}
	if !strings.Contains(page.Body, authenticatedMessage) {
		t.Fatalf("Expected %q in the secured page, got %q", authenticatedMessage, page.Body)
	}
}

// TestLoginForbidden authenticates a user the realm knows but who lacks the
// required role, the authorization must be denied.
func TestLoginForbidden(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	page := login(t, ctx, userWithInvalidRole, passwordWithInvalidRole)
	if page.StatusCode != http.StatusForbidden {
		t.Fatalf("Expected status %d after login, got %d", http.StatusForbidden, page.StatusCode)
	}
	if !strings.Contains(page.Body, forbiddenMessage) {
		t.Fatalf("Expected %q in the response, got %q", forbiddenMessage, page.Body)
	}
}

// TestLoginUnauthorized submits a wrong password, the login page must be
// rendered again so the user can retry.
func TestLoginUnauthorized(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	page := login(t, ctx, userWithValidRole, "wrong_password")
	if !page.IsLoginPage() {
		t.Fatalf("Expected the login page to be rendered again, got status %d", page.StatusCode)
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
