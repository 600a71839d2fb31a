package keycloak

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPage = `<html>
<body>
  <div id="kc-header-wrapper">test-realm</div>
  <form id="kc-form-login" action="%s" method="post">
    <input name="username" value=""/>
    <input name="password" value=""/>
    <input type="hidden" name="credentialId" value=""/>
    <button name="login" type="submit">Sign In</button>
  </form>
</body>
</html>`

func TestParseLoginForm(t *testing.T) {
	page := fmt.Sprintf(loginPage, "/realms/test-realm/login-actions/authenticate?session_code=abc")
	form, err := ParseLoginForm("https://keycloak.example.com/realms/test-realm/auth", strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "https://keycloak.example.com/realms/test-realm/login-actions/authenticate?session_code=abc", form.Action)
	assert.Contains(t, form.Fields, "username")
	assert.Contains(t, form.Fields, "password")
	assert.Contains(t, form.Fields, "credentialId")
}

func TestParseLoginFormMissingForm(t *testing.T) {
	_, err := ParseLoginForm("https://keycloak.example.com", strings.NewReader("<html><body>welcome</body></html>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kc-form-login")
}

func TestParseLoginFormMissingFields(t *testing.T) {
	page := `<html><body><form id="kc-form-login" action="/auth">
		<input name="username"/>
		<button name="login">Sign In</button>
	</form></body></html>`
	_, err := ParseLoginForm("https://keycloak.example.com", strings.NewReader(page))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestParseLoginFormMissingButton(t *testing.T) {
	page := `<html><body><form id="kc-form-login" action="/auth">
		<input name="username"/>
		<input name="password"/>
	</form></body></html>`
	_, err := ParseLoginForm("https://keycloak.example.com", strings.NewReader(page))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestContainsRealm(t *testing.T) {
	page := fmt.Sprintf(loginPage, "/auth")
	assert.True(t, ContainsRealm(page, "test-realm"))
	assert.False(t, ContainsRealm(page, "other-realm"))
}

func TestRequestSecuredPageAndLogin(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/secured", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("SESSION"); err == nil && cookie.Value == "authenticated" {
			fmt.Fprint(w, "principal: developer")
			return
		}
		http.Redirect(w, r, "/auth", http.StatusFound)
	})
	mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, loginPage, "/login")
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") == "developer" && r.PostForm.Get("password") == "secret" {
			http.SetCookie(w, &http.Cookie{Name: "SESSION", Value: "authenticated", Path: "/"})
			http.Redirect(w, r, "/secured", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, err := NewClient()
	require.NoError(t, err)

	page, err := client.RequestSecuredPageAndLogin(server.URL+"/secured", "developer", "secret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.Body, "principal: developer")

	freshClient, err := NewClient()
	require.NoError(t, err)
	page, err = freshClient.RequestSecuredPageAndLogin(server.URL+"/secured", "developer", "wrong")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, page.StatusCode)
}

func TestElementTextByID(t *testing.T) {
	page := `<html><body><p>Hello <span id="username">G-abc123</span></p></body></html>`
	text, err := ElementTextByID(page, "username")
	require.NoError(t, err)
	assert.Equal(t, "G-abc123", text)

	_, err = ElementTextByID(page, "missing")
	require.Error(t, err)
}

func TestIsLoginPage(t *testing.T) {
	page := &Page{StatusCode: http.StatusOK, Body: fmt.Sprintf(loginPage, "/auth")}
	assert.True(t, page.IsLoginPage())
	assert.False(t, (&Page{Body: "<html><body>Forbidden</body></html>"}).IsLoginPage())
}
