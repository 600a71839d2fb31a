package httpclient

import (
	"bufio"
	"bytes"
	"fmt"
	"net/http"
	"strings"

	kube "github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
)

// Credentials for digest authentication performed by curl itself
type Credentials struct {
	Username string
	Password string
}

// CurlConfig describes where curl runs and what it targets. Requests are
// issued from inside the configured pod, which makes pod IPs and cluster-local
// service names reachable even when the test driver runs outside the cluster.
type CurlConfig struct {
	Credentials *Credentials
	Container   string
	Podname     string
	Namespace   string
	Protocol    string
	Port        int
}

// CurlClient is an HTTP client that executes curl inside an existing pod
type CurlClient struct {
	Config CurlConfig
	// Cookie is sent with every request when set, letting callers pin an
	// HTTP session while switching target pods
	Cookie string
	*kube.Kubernetes
}

func NewCurlClient(c CurlConfig, kubernetes *kube.Kubernetes) *CurlClient {
	return &CurlClient{
		Config:     c,
		Kubernetes: kubernetes,
	}
}

// CloneForPod returns a client running curl in another pod, keeping config and cookie
func (c *CurlClient) CloneForPod(podName string) *CurlClient {
	client := NewCurlClient(c.Config, c.Kubernetes)
	client.Config.Podname = podName
	client.Cookie = c.Cookie
	return client
}

func (c *CurlClient) Get(path string, headers map[string]string) (*http.Response, error) {
	return c.executeCurlCommand(path, headers)
}

func (c *CurlClient) Post(path, payload string, headers map[string]string) (*http.Response, error) {
	data := ""
	if payload != "" {
		data = fmt.Sprintf("-d $'%s'", payload)
	}
	return c.executeCurlCommand(path, headers, data, "-X POST")
}

func (c *CurlClient) Put(path, payload string, headers map[string]string) (*http.Response, error) {
	data := ""
	if payload != "" {
		data = fmt.Sprintf("-d $'%s'", payload)
	}
	return c.executeCurlCommand(path, headers, data, "-X PUT")
}

func (c *CurlClient) Delete(path string, headers map[string]string) (*http.Response, error) {
	return c.executeCurlCommand(path, headers, "-X DELETE")
}

func (c *CurlClient) executeCurlCommand(path string, headers map[string]string, args ...string) (*http.Response, error) {
	httpURL := fmt.Sprintf("%s://%s:%d/%s", c.Config.Protocol, c.Config.Podname, c.Config.Port, path)

	headerStr := headerString(headers)
	if c.Cookie != "" {
		headerStr += fmt.Sprintf(" -H 'Cookie: %s'", c.Cookie)
	}
	argStr := strings.Join(args, " ")

	if c.Config.Credentials != nil {
		return c.executeCurlWithAuth(httpURL, headerStr, argStr)
	}
	return c.executeCurlNoAuth(httpURL, headerStr, argStr)
}

func (c *CurlClient) executeCurlWithAuth(httpURL, headers, args string) (*http.Response, error) {
	user := fmt.Sprintf("-u %v:%v", c.Config.Credentials.Username, c.Config.Credentials.Password)
	curl := fmt.Sprintf("curl -i --insecure --digest --http1.1 %s %s %s %s", user, headers, args, httpURL)

	execOut, err := c.exec(curl)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(&execOut)
	rsp, err := http.ReadResponse(reader, nil)
	if err != nil {
		return nil, err
	}

	if rsp.StatusCode != http.StatusUnauthorized {
		return rsp, fmt.Errorf("expected 401 DIGEST response before content. Received '%s'", rsp.Status)
	}

	return c.handleContent(reader)
}

func (c *CurlClient) executeCurlNoAuth(httpURL, headers, args string) (*http.Response, error) {
	curl := fmt.Sprintf("curl -i --insecure --http1.1 %s %s %s", headers, args, httpURL)
	execOut, err := c.exec(curl)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(&execOut)
	return c.handleContent(reader)
}

func (c *CurlClient) exec(cmd string) (bytes.Buffer, error) {
	execOut, execErr, err := c.Kubernetes.ExecWithOptions(
		kube.ExecOptions{
			Container: c.Config.Container,
			Command:   []string{"bash", "-c", cmd},
			PodName:   c.Config.Podname,
			Namespace: c.Config.Namespace,
		})
	if err != nil {
		return execOut, fmt.Errorf("curl exec failed: %w, stderr: %s", err, execErr)
	}
	return execOut, nil
}

func (c *CurlClient) handleContent(reader *bufio.Reader) (*http.Response, error) {
	rsp, err := http.ReadResponse(reader, nil)
	if err != nil {
		return nil, err
	}

	for rsp.StatusCode == http.StatusContinue {
		rsp, err = http.ReadResponse(reader, nil)
		if err != nil {
			return nil, err
		}
	}

	if cookie := rsp.Header.Get("Set-Cookie"); cookie != "" {
		c.Cookie = strings.SplitN(cookie, ";", 2)[0]
	}
	return rsp, nil
}

func headerString(headers map[string]string) string {
	b := new(bytes.Buffer)
	for key, value := range headers {
		fmt.Fprintf(b, "-H '%s: %s' ", key, value)
	}
	return strings.TrimSpace(b.String())
}
