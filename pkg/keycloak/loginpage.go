// Package keycloak interacts with the Keycloak login page. It can verify that
// a response is the login page with the required fields, check for the expected
// realm, and perform the login.
package keycloak

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// HTML id of the login form
const formLogin = "kc-form-login"

// HTML names of the login form fields
const (
	fieldUsername = "username"
	fieldPassword = "password"
	btnLogin      = "login"
)

// LoginForm is the scraped Keycloak login form
type LoginForm struct {
	// Action is the resolved URL the form posts to
	Action string
	// Fields holds every input of the form, name to current value
	Fields map[string]string
}

// ParseLoginForm scrapes the login form out of a login page document. It fails
// when the form, its username or password inputs or its login button are missing.
func ParseLoginForm(pageURL string, body io.Reader) (*LoginForm, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return nil, err
	}

	form := findElementByID(doc, "form", formLogin)
	if form == nil {
		return nil, fmt.Errorf("login form with id %q not found", formLogin)
	}

	result := &LoginForm{Fields: map[string]string{}}
	hasLoginButton := false
	visit(form, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "input":
			name := attr(n, "name")
			if name != "" {
				result.Fields[name] = attr(n, "value")
			}
		case "button":
			if attr(n, "name") == btnLogin {
				hasLoginButton = true
			}
		}
	})

	for _, field := range []string{fieldUsername, fieldPassword} {
		if _, ok := result.Fields[field]; !ok {
			return nil, fmt.Errorf("the input element with name %q was not found", field)
		}
	}
	if !hasLoginButton {
		return nil, fmt.Errorf("the button element with name %q was not found", btnLogin)
	}

	action := attr(form, "action")
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	actionURL, err := base.Parse(action)
	if err != nil {
		return nil, err
	}
	result.Action = actionURL.String()

	return result, nil
}

// ContainsRealm reports whether the page body mentions the realm name, the
// login page renders it in a heading div
func ContainsRealm(body string, realmName string) bool {
	return strings.Contains(body, realmName)
}

// Page is the final page reached by a login flow. The status code tells the
// outcome apart, authorization failures come back as a rendered error page.
type Page struct {
	// URL the flow ended on after redirects
	URL        string
	StatusCode int
	Body       string
}

// IsLoginPage reports whether the page is the Keycloak login page, which is
// rendered again after a failed authentication
func (p *Page) IsLoginPage() bool {
	_, err := ParseLoginForm("", strings.NewReader(p.Body))
	return err == nil
}

// Client performs browser-like login flows against applications secured by Keycloak
type Client struct {
	*http.Client
}

// NewClient returns a Client that keeps cookies across redirects and accepts
// the self-signed certificates the test deployments serve
func NewClient() (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		Client: &http.Client{
			Jar: jar,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}, nil
}

// RequestSecuredPageAndLogin requests a secured page, which redirects to the
// Keycloak login page, then submits the login form with the credentials and
// returns the page reached after the login attempt
func (c *Client) RequestSecuredPageAndLogin(securedURL, username, password string) (*Page, error) {
	rsp, err := c.Get(securedURL)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d requesting %s", rsp.StatusCode, securedURL)
	}

	form, err := ParseLoginForm(rsp.Request.URL.String(), rsp.Body)
	if err != nil {
		return nil, err
	}
	return c.Login(form, username, password)
}

// Login submits the scraped login form with the credentials. A non 2xx status
// is not an error, authorization verdicts are read off the returned page.
func (c *Client) Login(form *LoginForm, username, password string) (*Page, error) {
	values := url.Values{}
	for name, value := range form.Fields {
		values.Set(name, value)
	}
	values.Set(fieldUsername, username)
	values.Set(fieldPassword, password)

	rsp, err := c.PostForm(form.Action, values)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()
	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, err
	}
	return &Page{
		URL:        rsp.Request.URL.String(),
		StatusCode: rsp.StatusCode,
		Body:       string(body),
	}, nil
}

// ElementTextByID returns the trimmed text content of the element carrying
// the id, the secured test pages render security principals into such elements
func ElementTextByID(body, id string) (string, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", err
	}
	var found *html.Node
	visit(doc, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
		}
	})
	if found == nil {
		return "", fmt.Errorf("element with id %q not found", id)
	}
	var text strings.Builder
	visit(found, func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
	})
	return strings.TrimSpace(text.String()), nil
}

func findElementByID(n *html.Node, element, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == element && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, element, id); found != nil {
			return found
		}
	}
	return nil
}

func visit(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c, fn)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
