package webcache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/iancoleman/strcase"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/types"

	ispnv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/httpclient"
	"github.com/jboss-intersmash/intersmash-tests/pkg/provision"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

// putValue stores the value in the web session and asserts the servlet echoes it
func putValue(t *testing.T, session *httpclient.SessionClient, baseURL string, value int) {
	body, err := session.Put(valueURL(baseURL, value))
	utils.ExpectNoError(err)
	assertJSONField(t, body, "added", value)
}

// testValue asserts the session still holds the value
func testValue(t *testing.T, session *httpclient.SessionClient, baseURL string, value int) {
	body, err := session.Get(baseURL)
	utils.ExpectNoError(err)
	assertJSONField(t, body, "value", value)
}

func assertJSONField(t *testing.T, body, field string, value int) {
	var payload map[string]string
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("Response is not valid JSON: %q: %v", body, err)
	}
	if payload[field] != strconv.Itoa(value) {
		t.Fatalf("Expected %s=%d in response, got %q", field, value, body)
	}
}

// TestRemoteCacheManagerHealthy verifies the cache service REST endpoint
// answers digest authenticated requests and reports a healthy cluster while
// sessions are offloaded to it.
func TestRemoteCacheManagerHealthy(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, infinispan.Infinispan().PodSelectorLabels())

	shutDownClusters(t, ctx)
	setInitialClustersReplicas(t, ctx)
	baseURL := applicationURL(t, ctx)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)
	putValue(t, session, baseURL, 3)

	cacheURL, err := ispnProvisioner.URL(ctx)
	utils.ExpectNoError(err)

	client := httpclient.New(cacheUsername, cachePassword, "http")
	rsp, err := client.Get(strings.TrimPrefix(cacheURL, "http://")+"/rest/v2/cache-managers/default/health", nil)
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

// TestWebCacheOffloaded verifies the web session survives a full application
// server restart: the value is stored, the server cluster is scaled to zero
// and back, and the same session must still resolve the value from the
// remote cache.
func TestWebCacheOffloaded(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	shutDownClusters(t, ctx)
	setInitialClustersReplicas(t, ctx)
	baseURL := applicationURL(t, ctx)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)

	putValue(t, session, baseURL, 5)
	testValue(t, session, baseURL, 5)

	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 0, true))
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 2, true))

	testValue(t, session, baseURL, 5)
}

// TestWildflyPodCrashFailover verifies the session value survives the JVM of
// one application server pod being killed without warning.
func TestWildflyPodCrashFailover(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	shutDownClusters(t, ctx)
	setInitialClustersReplicas(t, ctx)
	baseURL := applicationURL(t, ctx)

	pods, err := wildflyProvisioner.Pods(ctx)
	utils.ExpectNoError(err)
	podToFail := pods[0]
	t.Logf("Pod %s will be terminated ungracefully to verify failover", podToFail.Name)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)

	putValue(t, session, baseURL, 7)
	// Replication to the remote store is asynchronous, give it time before
	// crashing the pod or the test fails intermittently
	time.Sleep(replicationPause)
	testValue(t, session, baseURL, 7)

	t.Logf("Making pod %s crash", podToFail.Name)
	utils.ExpectNoError(provision.CrashJavaProcess(ctx, testKube.Kubernetes, utils.Namespace, podToFail.Name))
	utils.ExpectNoError(provision.DeletePodGracelessly(ctx, testKube.Kubernetes, utils.Namespace, podToFail.Name))

	testValue(t, session, baseURL, 7)
}

// TestInfinispanPodCrashFailover verifies the session value survives one cache
// cluster member being killed while the cluster is resized around it.
func TestInfinispanPodCrashFailover(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, infinispan.Infinispan().PodSelectorLabels())

	shutDownClusters(t, ctx)
	setInitialClustersReplicas(t, ctx)
	baseURL := applicationURL(t, ctx)

	pods, err := ispnProvisioner.Pods(ctx)
	utils.ExpectNoError(err)
	podToFail := pods[0]
	t.Logf("Pod %s will be terminated ungracefully to simulate a cache node failure", podToFail.Name)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)

	putValue(t, session, baseURL, 10)
	time.Sleep(replicationPause)
	testValue(t, session, baseURL, 10)

	t.Log("Scaling cache cluster up to 3 replicas")
	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 3, true))
	// Killing the first pod makes the operator redeploy it, the scale down
	// afterwards removes the extra member once the cluster reformed
	utils.ExpectNoError(provision.CrashJavaProcess(ctx, testKube.Kubernetes, utils.Namespace, podToFail.Name))
	t.Log("Scaling cache cluster down to 2 replicas")
	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 2, true))

	testValue(t, session, baseURL, 10)
}

// TestClusters verifies every application server pod observes the same
// session value, including after the value is changed through one concrete
// pod, by issuing pod-internal requests under the same session ID.
func TestClusters(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	shutDownClusters(t, ctx)
	setInitialClustersReplicas(t, ctx)
	baseURL := applicationURL(t, ctx)

	session, err := httpclient.NewSession()
	utils.ExpectNoError(err)
	putValue(t, session, baseURL, 2)
	sessionID := session.SessionID(baseURL)
	if sessionID == "" {
		t.Fatal("No JSESSIONID cookie received from the application")
	}

	utils.ExpectNoError(ispnProvisioner.Scale(ctx, 5, true))
	utils.ExpectNoError(wildflyProvisioner.Scale(ctx, 3, true))

	pods, err := wildflyProvisioner.Pods(ctx)
	utils.ExpectNoError(err)

	curl := httpclient.NewCurlClient(httpclient.CurlConfig{
		Podname:   pods[0].Name,
		Namespace: utils.Namespace,
		Protocol:  "http",
		Port:      8080,
	}, testKube.Kubernetes)
	curl.Cookie = "JSESSIONID=" + sessionID

	assertValueOnAllPods(t, curl, 2)

	// Change the value through the first pod, then through the last one
	putValueOnPod(t, curl, pods[0].Name, 21)
	assertValueOnAllPods(t, curl, 21)

	putValueOnPod(t, curl, pods[len(pods)-1].Name, 23)
	assertValueOnAllPods(t, curl, 23)
}

// assertValueOnAllPods reads the session value on every application server
// pod with a pod-internal request, all under the same session ID
func assertValueOnAllPods(t *testing.T, curl *httpclient.CurlClient, value int) {
	ctx := context.Background()
	pods, err := wildflyProvisioner.Pods(ctx)
	utils.ExpectNoError(err)
	for _, pod := range pods {
		body := getBodyOnPod(t, curl, pod.Name)
		assertJSONField(t, body, "value", value)
		t.Logf("Pod %s sees value %d", pod.Name, value)
	}
}

func putValueOnPod(t *testing.T, curl *httpclient.CurlClient, podName string, value int) {
	rsp, err := curl.CloneForPod(podName).Put(fmt.Sprintf("?value=%d", value), "", nil)
	utils.ExpectNoError(err)
	defer rsp.Body.Close()
	if rsp.StatusCode != 200 {
		t.Fatalf("PUT value call on pod %s failed with status: %d", podName, rsp.StatusCode)
	}
}

func getBodyOnPod(t *testing.T, curl *httpclient.CurlClient, podName string) string {
	rsp, err := curl.CloneForPod(podName).Get("", nil)
	utils.ExpectNoError(err)
	defer rsp.Body.Close()
	body, err := io.ReadAll(rsp.Body)
	utils.ExpectNoError(err)
	if rsp.StatusCode != 200 {
		t.Fatalf("GET value call on pod %s failed with status: %d", podName, rsp.StatusCode)
	}
	return string(body)
}

// TestCacheCRLifecycle verifies a cache declared through the Cache custom
// resource is created on the running cluster and removed with the resource.
func TestCacheCRLifecycle(t *testing.T) {
	testKube.SkipUnlessSupported(t, ispnv2alpha1.GroupVersion.String(), "Cache")
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, infinispan.Infinispan().PodSelectorLabels())

	shutDownClusters(t, ctx)
	setInitialClustersReplicas(t, ctx)

	name := strcase.ToKebab(utils.TestName(t))
	cache := &ispnv2alpha1.Cache{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: utils.Namespace,
			Labels:    map[string]string{"app": name},
		},
		Spec: ispnv2alpha1.CacheSpec{
			ClusterName: infinispanName,
			Template:    `{"distributed-cache":{"mode":"SYNC"}}`,
		},
	}
	testKube.Create(cache)

	err := wait.New(func() (bool, error) {
		c := &ispnv2alpha1.Cache{}
		if err := testKube.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: utils.Namespace, Name: name}, c); err != nil {
			return false, nil
		}
		return c.IsReady(), nil
	}).
		Timeout(utils.MaxWaitTimeout).
		Interval(utils.DefaultPollPeriod).
		Reason(fmt.Sprintf("cache '%s' to be ready", name)).
		WaitFor(ctx)
	utils.ExpectNoError(err)

	testKube.DeleteResource(utils.Namespace, labels.Set{"app": name}, cache)
	err = testKube.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: utils.Namespace, Name: name}, &ispnv2alpha1.Cache{})
	utils.ExpectNotFound(err)
}
