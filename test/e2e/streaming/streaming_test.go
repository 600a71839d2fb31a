package streaming

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const producedMessages = 10

// TestUserCredentialsGenerated verifies the entity operator materialized the
// SCRAM credentials the secured connector reads at boot.
func TestUserCredentialsGenerated(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())

	secret, err := testKube.Kubernetes.GetSecret(kafkaUserName, utils.Namespace, ctx)
	utils.ExpectNoError(err)
	if len(secret.Data["password"]) == 0 {
		t.Fatalf("Secret %s carries no password", kafkaUserName)
	}
}

// TestPlaintextMessaging pushes messages through the connector bound to the
// plaintext listener and waits for all of them to come back on the inbound
// stream.
func TestPlaintextMessaging(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	produceAndAwait(t, ctx, "plain")
}

// TestSecuredMessaging pushes messages through the connector bound to the TLS
// listener, the server authenticates with the generated SCRAM credentials and
// the trust configured from the cluster CA.
func TestSecuredMessaging(t *testing.T) {
	ctx := context.Background()
	defer testKube.LogOnPanic(utils.Namespace, wildflyApp.WildFlyServer().PodSelectorLabels())
	waitUntilApplicationIsReachable(t, ctx)

	produceAndAwait(t, ctx, "secured")
}

// produceAndAwait sends unique payloads over the named connector and polls
// the consume resource until every payload has been echoed back
func produceAndAwait(t *testing.T, ctx context.Context, connector string) {
	t.Helper()
	base, err := wildflyProvisioner.URL(ctx)
	utils.ExpectNoError(err)

	payloads := make([]string, producedMessages)
	for i := range payloads {
		payloads[i] = uuid.NewString()
	}

	client := &http.Client{}
	for _, payload := range payloads {
		produceURL := fmt.Sprintf("%s/produce/%s?message=%s", base, connector, url.QueryEscape(payload))
		rsp, err := client.Post(produceURL, "text/plain", nil)
		utils.ExpectNoError(err)
		rsp.Body.Close()
		if rsp.StatusCode != http.StatusOK && rsp.StatusCode != http.StatusNoContent {
			t.Fatalf("Producing %q over %s returned status %d", payload, connector, rsp.StatusCode)
		}
	}

	consumeURL := fmt.Sprintf("%s/consume/%s", base, connector)
	var lastBody string
	err = wait.New(func() (bool, error) {
		rsp, err := client.Get(consumeURL)
		if err != nil {
			return false, nil
		}
		defer rsp.Body.Close()
		if rsp.StatusCode != http.StatusOK {
			return false, nil
		}
		body, err := io.ReadAll(rsp.Body)
		if err != nil {
			return false, nil
		}
		lastBody = string(body)
		for _, payload := range payloads {
			if !strings.Contains(lastBody, payload) {
				return false, nil
			}
		}
		return true, nil
	}).
		Timeout(utils.MaxWaitTimeout).
		Interval(utils.DefaultPollPeriod).
		Reason(fmt.Sprintf("waiting for %d messages on the %s connector", producedMessages, connector)).
		WaitFor(ctx)
	if err != nil {
		t.Fatalf("Not all messages came back over %s, last body: %q", connector, lastBody)
	}
}
