package httpclient

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// SessionClient keeps the servlet session cookie across requests so that a
// sequence of requests against different pods of the same cluster is treated
// as one HTTP session by the server side.
type SessionClient struct {
	*http.Client
}

func NewSession() (*SessionClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &SessionClient{
		Client: &http.Client{
			Jar: jar,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}, nil
}

// Get performs the request and returns the response body
func (c *SessionClient) Get(rawURL string) (string, error) {
	rsp, err := c.Client.Get(rawURL)
	if err != nil {
		return "", err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for GET %s", rsp.StatusCode, rawURL)
	}
	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Put performs a PUT without a body, the query string carries the payload,
// and returns the response body
func (c *SessionClient) Put(rawURL string) (string, error) {
	req, err := http.NewRequest(http.MethodPut, rawURL, nil)
	if err != nil {
		return "", err
	}
	rsp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for PUT %s", rsp.StatusCode, rawURL)
	}
	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// SessionID returns the JSESSIONID cookie currently held for the URL, "" when absent
func (c *SessionClient) SessionID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.Jar.Cookies(u) {
		if cookie.Name == "JSESSIONID" {
			return cookie.Value
		}
	}
	return ""
}
