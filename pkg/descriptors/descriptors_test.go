package descriptors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"activemq", "infinispan", "kafka", "keycloak", "wildfly"}, Names())
}

func TestRenderUnknown(t *testing.T) {
	_, err := Render("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown descriptor")
}

func TestRenderKafka(t *testing.T) {
	out, err := Render("kafka")
	require.NoError(t, err)

	rendering := string(out)
	assert.Contains(t, rendering, "kind: Kafka")
	assert.Contains(t, rendering, "kind: KafkaTopic")
	assert.Contains(t, rendering, "kind: KafkaUser")
	assert.Contains(t, rendering, "apiVersion: kafka.strimzi.io/v1beta2")
	assert.Contains(t, rendering, "scram-sha-512")
	assert.Equal(t, 2, strings.Count(rendering, "---\n"), "three documents expected")
}

func TestRenderWildfly(t *testing.T) {
	out, err := Render("wildfly")
	require.NoError(t, err)

	rendering := string(out)
	assert.Contains(t, rendering, "kind: BuildConfig")
	assert.Contains(t, rendering, "kind: WildFlyServer")
	assert.Contains(t, rendering, "MAVEN_S2I_ARTIFACT_DIRS")
	assert.Contains(t, rendering, "image-registry.openshift-image-registry.svc:5000")
}

func TestRenderEveryDescriptor(t *testing.T) {
	for _, name := range Names() {
		out, err := Render(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(out), "apiVersion:", name)
	}
}
