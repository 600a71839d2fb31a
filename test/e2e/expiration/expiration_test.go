package expiration

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jboss-intersmash/intersmash-tests/pkg/httpclient"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

var serialPattern = regexp.MustCompile(`^[0-9]+$`)

// membersOf extracts the cluster member list from the members servlet output
func membersOf(t *testing.T, body string) []string {
	parts := strings.Split(body, "Members:")
	if len(parts) < 2 {
		t.Fatalf("Response from members servlet does not contain cluster members: %q", body)
	}
	return strings.Split(parts[1], ",")
}

func readSerial(t *testing.T, session *httpclient.SessionClient, baseURL string) int {
	body, err := session.Get(baseURL + "/serial")
	utils.ExpectNoError(err)
	trimmed := strings.TrimSpace(body)
	if !serialPattern.MatchString(trimmed) {
		t.Fatalf("Response from serial servlet does not contain a serial number: %q", body)
	}
	serial, err := strconv.Atoi(trimmed)
	utils.ExpectNoError(err)
	return serial
}

// TestClusterIsFormed verifies the application server cluster forms over
// KUBE_PING by asserting the members servlet reports both members.
func TestClusterIsFormed(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 2, true))
	baseURL := applicationURL(t, ctx)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)
	body, err := session.Get(baseURL + "/members")
	utils.ExpectNoError(err)

	members := membersOf(t, body)
	if len(members) < 2 {
		t.Fatalf("Members servlet should report 2 cluster members, got: %v", members)
	}
}

// TestClusterIsConnectedToInfinispan verifies session data lives in the
// remote cache: a counter stored in the session must survive a full scale
// down and come back incremented on the next request.
func TestClusterIsConnectedToInfinispan(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 2, true))
	baseURL := applicationURL(t, ctx)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)

	body, err := session.Get(baseURL + "/members")
	utils.ExpectNoError(err)
	if len(membersOf(t, body)) < 2 {
		t.Fatalf("Members servlet should report 2 cluster members: %q", body)
	}

	if serial := readSerial(t, session, baseURL); serial != 0 {
		t.Fatalf("Serial servlet returned %d, expected 0 for a fresh session", serial)
	}

	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 0, true))
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 1, true))

	if serial := readSerial(t, session, baseURL); serial != 1 {
		t.Fatalf("Serial servlet returned %d after restart, expected 1", serial)
	}
}

// TestSecuredCacheEndpointHealthy verifies the TLS protected REST endpoint of
// the cache service accepts the digest credentials the application uses.
func TestSecuredCacheEndpointHealthy(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, infinispan.Infinispan().PodSelectorLabels())

	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 1, true))
	cacheURL, err := ispnProvisioner.URL(ctx)
	utils.ExpectNoError(err)

	// The route hostname is not covered by the generated certificate, which
	// only names the cluster-local service
	client := httpclient.NewTLS(cacheUsername, cachePassword, &tls.Config{InsecureSkipVerify: true})
	rsp, err := client.Get(strings.TrimPrefix(cacheURL, "https://")+"/rest/v2/cache-managers/default/health", nil)
	utils.ExpectNoError(err)
	defer rsp.Body.Close()
	if rsp.StatusCode != 200 {
		t.Fatalf("Health endpoint returned status %d", rsp.StatusCode)
	}
	body, err := io.ReadAll(rsp.Body)
	utils.ExpectNoError(err)
	if !strings.Contains(string(body), "HEALTHY") {
		t.Fatalf("Cache manager is not healthy: %s", body)
	}
}

// TestExpirations verifies expiration scheduling for externalized sessions:
// each node schedules expiration for the sessions it created, and after a
// restart the surviving node picks up and expires all remote sessions.
func TestExpirations(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 1, true))
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 2, true))

	pods, err := wildflyProvisioner.Pods(ctx)
	utils.ExpectNoError(err)
	if len(pods) != 2 {
		t.Fatalf("Expected 2 application server pods, got %d", len(pods))
	}

	// The route balances round robin, but right after a scale up both
	// requests can still land on the same node. Create one session on each
	// node with pod-internal requests instead.
	sessionID1 := createSessionOnPod(t, pods[0].Name)
	sessionID2 := createSessionOnPod(t, pods[1].Name)
	t.Logf("Created sessions %s and %s", sessionID1, sessionID2)

	creationMsg1 := fmt.Sprintf(sessionCreationMessageTemplate, sessionID1, sessionExpirationTimeoutSeconds)
	creationMsg2 := fmt.Sprintf(sessionCreationMessageTemplate, sessionID2, sessionExpirationTimeoutSeconds)

	// Each node schedules expiration locally for the session it created
	for _, pod := range pods {
		log, err := testKube.Kubernetes.Logs(pod.Name, utils.Namespace, ctx)
		utils.ExpectNoError(err)
		created := strings.Contains(log, creationMsg1) || strings.Contains(log, creationMsg2)
		both := strings.Contains(log, sessionID1) && strings.Contains(log, sessionID2)
		if !created || both {
			t.Fatalf("Session expirations should be scheduled locally on each node, pod %s log does not match", pod.Name)
		}
	}

	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 0, true))
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 1, true))

	// Wait for both sessions to expire, then look for the expiration messages
	// on the surviving node
	time.Sleep(sessionExpirationTimeoutSeconds*time.Second + utils.SessionExpiryMargin)

	pods, err = wildflyProvisioner.Pods(ctx)
	utils.ExpectNoError(err)
	log, err := testKube.Kubernetes.Logs(pods[0].Name, utils.Namespace, ctx)
	utils.ExpectNoError(err)

	expirationMsg1 := fmt.Sprintf(sessionExpirationMessageTemplate, sessionID1)
	expirationMsg2 := fmt.Sprintf(sessionExpirationMessageTemplate, sessionID2)
	if !strings.Contains(log, expirationMsg1) || !strings.Contains(log, expirationMsg2) {
		t.Fatal("Sessions in the remote cache are not expiring after restart")
	}
}

// createSessionOnPod creates an HTTP session with a pod-internal request and
// returns the session ID the session servlet reports
func createSessionOnPod(t *testing.T, podName string) string {
	curl := httpclient.NewCurlClient(httpclient.CurlConfig{
		Podname:   podName,
		Namespace: utils.Namespace,
		Protocol:  "http",
		Port:      8080,
	}, testKube.Kubernetes)

	rsp, err := curl.Get("session", nil)
	utils.ExpectNoError(err)
	defer rsp.Body.Close()
	if rsp.StatusCode != 200 {
		t.Fatalf("Session servlet on pod %s returned status %d", podName, rsp.StatusCode)
	}
	buf := new(strings.Builder)
	_, err = io.Copy(buf, rsp.Body)
	utils.ExpectNoError(err)

	// Servlet replies with "Session: <id>"
	parts := strings.SplitN(buf.String(), ":", 2)
	if len(parts) != 2 {
		t.Fatalf("Unexpected session servlet output on pod %s: %q", podName, buf.String())
	}
	return strings.TrimSpace(parts[1])
}
