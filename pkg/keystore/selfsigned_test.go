package keystore

import (
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	p12 "software.sslmate.com/src/go-pkcs12"
)

func TestCreateServerCertificates(t *testing.T) {
	publicKey, privateKey, tlsConf, err := CreateServerCertificates("example.apps.test")
	require.NoError(t, err)

	certBlock, _ := pem.Decode(publicKey)
	require.NotNil(t, certBlock)
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.apps.test"}, cert.DNSNames)

	keyBlock, _ := pem.Decode(privateKey)
	require.NotNil(t, keyBlock)
	assert.Equal(t, "RSA PRIVATE KEY", keyBlock.Type)

	assert.Equal(t, "example.apps.test", tlsConf.ServerName)
	assert.NotNil(t, tlsConf.RootCAs)
}

func TestCreateKeystore(t *testing.T) {
	keystore, tlsConf, err := CreateKeystore("example.apps.test")
	require.NoError(t, err)

	key, cert, caCerts, err := p12.DecodeChain(keystore, KeystorePassword)
	require.NoError(t, err)
	assert.NotNil(t, key)
	assert.Equal(t, []string{"example.apps.test"}, cert.DNSNames)
	require.Len(t, caCerts, 1)
	assert.True(t, caCerts[0].IsCA)

	assert.Equal(t, "example.apps.test", tlsConf.ServerName)
}
