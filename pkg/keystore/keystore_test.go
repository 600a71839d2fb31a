package keystore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSubjectAlternativeNames(t *testing.T) {
	testCases := []struct {
		name     string
		hostName string
		sans     []string
		expected string
	}{
		{
			name:     "wildcard fallback without sans",
			hostName: "example-infinispan.infinispan.svc",
			sans:     nil,
			expected: "san=dns:*.example-infinispan.infinispan.svc",
		},
		{
			name:     "dns prefix added to bare names",
			hostName: "example",
			sans:     []string{"broker-amq-0.svc.cluster.local", "broker-amq-1.svc.cluster.local"},
			expected: "san=dns:broker-amq-0.svc.cluster.local,dns:broker-amq-1.svc.cluster.local",
		},
		{
			name:     "typed entries kept as-is",
			hostName: "example",
			sans:     []string{"ip:10.0.0.1", "route.apps.example.com"},
			expected: "san=ip:10.0.0.1,dns:route.apps.example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatSubjectAlternativeNames(tc.hostName, tc.sans))
		})
	}
}

func TestEncodeIdentities(t *testing.T) {
	identities := "credentials:\n  - username: developer\n    password: secret\n"
	encoded, err := EncodeIdentities(strings.NewReader(identities))
	require.NoError(t, err)
	assert.Equal(t, "Y3JlZGVudGlhbHM6CiAgLSB1c2VybmFtZTogZGV2ZWxvcGVyCiAgICBwYXNzd29yZDogc2VjcmV0Cg==", encoded)
}

func TestIdentitiesSecret(t *testing.T) {
	secret := IdentitiesSecret("connect-secret", "test-ns", []byte("credentials:"))
	assert.Equal(t, "connect-secret", secret.Name)
	assert.Equal(t, "test-ns", secret.Namespace)
	assert.Equal(t, []byte("credentials:"), secret.Data["identities.yaml"])
}

func TestKeystoreSecret(t *testing.T) {
	secret := KeystoreSecret("encryption-secret", "test-ns", "server", []byte{0x01})
	assert.Equal(t, "server", secret.StringData["alias"])
	assert.Equal(t, KeystorePassword, secret.StringData["password"])
	assert.Equal(t, []byte{0x01}, secret.Data["keystore.p12"])
}

func TestBrokerSSLSecret(t *testing.T) {
	secret := BrokerSSLSecret("broker-ssl", "test-ns", "server", "changeit", []byte{0x01}, []byte{0x02})
	assert.Equal(t, []byte{0x01}, secret.Data["broker.ks"])
	assert.Equal(t, []byte{0x02}, secret.Data["client.ts"])
	assert.Equal(t, "server", secret.StringData["alias"])
	assert.Equal(t, "changeit", secret.StringData["keyStorePassword"])
	assert.Equal(t, "changeit", secret.StringData["trustStorePassword"])
}
