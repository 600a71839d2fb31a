// Package httpclient provides the HTTP clients the test suites use to drive
// deployed applications, including digest authentication and session tracking.
package httpclient

import (
	"bytes"
	"crypto/md5"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HTTPClient can perform HTTP operations
type HTTPClient interface {
	Delete(path string, headers map[string]string) (*http.Response, error)
	Get(path string, headers map[string]string) (*http.Response, error)
	Post(path, payload string, headers map[string]string) (*http.Response, error)
	Put(path, payload string, headers map[string]string) (*http.Response, error)
}

type authenticationRealm struct {
	Username, Password, Realm, NONCE, QOP, Opaque, Algorithm string
}

type httpClientConfig struct {
	*http.Client
	username string
	password string
	protocol string
}

// New returns a client performing digest authentication with the passed credentials
func New(username, password, protocol string) HTTPClient {
	return newClient(username, password, protocol, &tls.Config{
		InsecureSkipVerify: true,
	})
}

// NewTLS is New over HTTPS with the passed TLS configuration
func NewTLS(username, password string, tlsConfig *tls.Config) HTTPClient {
	return newClient(username, password, "https", tlsConfig)
}

func newClient(username, password, protocol string, tlsConfig *tls.Config) HTTPClient {
	return &httpClientConfig{
		username: username,
		password: password,
		protocol: protocol,
		Client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
			},
		},
	}
}

func (c *httpClientConfig) Delete(path string, headers map[string]string) (*http.Response, error) {
	return c.exec("DELETE", path, "", headers)
}

func (c *httpClientConfig) Get(path string, headers map[string]string) (*http.Response, error) {
	return c.exec("GET", path, "", headers)
}

func (c *httpClientConfig) Post(path, payload string, headers map[string]string) (*http.Response, error) {
	return c.exec("POST", path, payload, headers)
}

func (c *httpClientConfig) Put(path, payload string, headers map[string]string) (*http.Response, error) {
	return c.exec("PUT", path, payload, headers)
}

func (c *httpClientConfig) exec(method, path, payload string, headers map[string]string) (*http.Response, error) {
	httpURL, err := url.Parse(fmt.Sprintf("%s://%s", c.protocol, path))
	if err != nil {
		return nil, err
	}
	rsp, err := c.request(httpURL, method, payload, headers)
	if err != nil {
		return nil, err
	}

	if rsp.StatusCode == http.StatusUnauthorized {
		if err = rsp.Body.Close(); err != nil {
			return nil, err
		}
		// Work on a copy, the credential must not leak into the caller's map
		h := make(map[string]string, len(headers)+1)
		for header, value := range headers {
			h[header] = value
		}
		authRealm, err := getAuthorization(c.username, c.password, rsp)
		if err != nil {
			return nil, err
		}
		authStr, err := getAuthString(authRealm, httpURL.RequestURI(), method, 0)
		if err != nil {
			return nil, err
		}
		h["Authorization"] = authStr
		rsp, err = c.request(httpURL, method, payload, h)
		if err != nil {
			return nil, err
		}
	}
	return rsp, err
}

func (c *httpClientConfig) request(url *url.URL, method, payload string, headers map[string]string) (*http.Response, error) {
	var body io.Reader
	if payload != "" {
		body = bytes.NewBuffer([]byte(payload))
	}
	req, err := http.NewRequest(method, url.String(), body)
	if err != nil {
		return nil, err
	}
	for header, value := range headers {
		req.Header.Add(header, value)
	}
	return c.Do(req)
}

func getAuthorization(username, password string, resp *http.Response) (*authenticationRealm, error) {
	header := resp.Header.Get("www-authenticate")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("unexpected www-authenticate header %q", header)
	}
	parts = strings.Split(parts[1], ", ")
	opts := make(map[string]string)

	for _, part := range parts {
		vals := strings.SplitN(part, "=", 2)
		if len(vals) < 2 {
			continue
		}
		key := vals[0]
		val := strings.Trim(vals[1], "\",")
		opts[key] = val
	}

	auth := authenticationRealm{
		username, password,
		opts["realm"], opts["nonce"], opts["qop"], opts["opaque"], opts["algorithm"],
	}
	return &auth, nil
}

func getAuthString(auth *authenticationRealm, path, method string, nc int) (string, error) {
	a1 := auth.Username + ":" + auth.Realm + ":" + auth.Password
	h := md5.New()
	if _, err := io.WriteString(h, a1); err != nil {
		return "", err
	}

	ha1 := hex.EncodeToString(h.Sum(nil))

	h = md5.New()
	a2 := method + ":" + path
	if _, err := io.WriteString(h, a2); err != nil {
		return "", err
	}

	ha2 := hex.EncodeToString(h.Sum(nil))

	ncStr := fmt.Sprintf("%08x", nc)
	cnonce, err := getCnonce()
	if err != nil {
		return "", err
	}

	respdig := fmt.Sprintf("%s:%s:%s:%s:%s:%s", ha1, auth.NONCE, ncStr, cnonce, auth.QOP, ha2)
	h = md5.New()
	if _, err := io.WriteString(h, respdig); err != nil {
		return "", err
	}

	respdig = hex.EncodeToString(h.Sum(nil))

	base := "username=\"%s\", realm=\"%s\", nonce=\"%s\", uri=\"%s\", response=\"%s\""
	base = fmt.Sprintf(base, auth.Username, auth.Realm, auth.NONCE, path, respdig)
	if auth.Opaque != "" {
		base += fmt.Sprintf(", opaque=\"%s\"", auth.Opaque)
	}
	if auth.QOP != "" {
		base += fmt.Sprintf(", qop=\"%s\", nc=%s, cnonce=\"%s\"", auth.QOP, ncStr, cnonce)
	}
	if auth.Algorithm != "" {
		base += fmt.Sprintf(", algorithm=\"%s\"", auth.Algorithm)
	}

	return "Digest " + base, nil
}

func getCnonce() (string, error) {
	b := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b)[:16], nil
}
