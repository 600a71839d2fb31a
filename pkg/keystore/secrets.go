package keystore

import (
	"encoding/base64"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EncodeIdentities encodes the contents of a reader, typically an
// identities.yaml credentials file, for use in a secret data entry
func EncodeIdentities(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not process data stream: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// IdentitiesSecret builds the credentials secret consumed by the cache service
// operator, data keyed by identities.yaml
func IdentitiesSecret(name, namespace string, identitiesYaml []byte) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{
			"identities.yaml": identitiesYaml,
		},
	}
}

// KeystoreSecret builds a secret carrying a PKCS12 keystore along with its
// alias and password, the layout the cache service operator expects for
// endpoint encryption with a user supplied certificate
func KeystoreSecret(name, namespace, alias string, keystore []byte) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			"alias":    alias,
			"password": KeystorePassword,
		},
		Data: map[string][]byte{
			"keystore.p12": keystore,
		},
	}
}

// CertSecret builds a secret carrying a certificate and private key in PEM
// format under tls.crt and tls.key
func CertSecret(name, namespace string, publicKey, privateKey []byte) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{
			"tls.crt": publicKey,
			"tls.key": privateKey,
		},
	}
}

// BrokerSSLSecret builds the secret layout the broker operator expects on an
// acceptor with sslEnabled, keystore and truststore plus the key alias and
// the password protecting both stores
func BrokerSSLSecret(name, namespace, alias, storePass string, keystore, truststore []byte) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			"alias":              alias,
			"keyStorePassword":   storePass,
			"trustStorePassword": storePass,
		},
		Data: map[string][]byte{
			"broker.ks": keystore,
			"client.ts": truststore,
		},
	}
}
