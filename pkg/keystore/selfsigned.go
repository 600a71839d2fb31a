package keystore

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	certutil "k8s.io/client-go/util/cert"
	"k8s.io/client-go/util/keyutil"
)

const (
	KeystorePassword   = "secret"
	TruststorePassword = "secret"
	keyBits            = 2048
)

var serialNumber int64 = 1

type certHolder struct {
	privateKey *rsa.PrivateKey
	cert       *x509.Certificate
	certBytes  []byte
}

// CreateServerCertificates returns the public and private keys in PEM format for
// serverName, plus the tls.Config clients need to connect to the server
func CreateServerCertificates(serverName string) (publicKey, privateKey []byte, clientTLSConf *tls.Config, err error) {
	ca, err := newCA()
	if err != nil {
		return nil, nil, nil, err
	}
	server, err := serverCert(serverName, ca)
	if err != nil {
		return nil, nil, nil, err
	}
	publicKey, err = server.certPEM()
	if err != nil {
		return nil, nil, nil, err
	}
	privateKey, err = server.privateKeyPEM()
	if err != nil {
		return nil, nil, nil, err
	}

	certpool := x509.NewCertPool()
	certpool.AddCert(ca.cert)
	clientTLSConf = &tls.Config{
		RootCAs:    certpool,
		ServerName: serverName,
	}
	return
}

// CreateKeystore returns a keystore using a self-signed certificate, and the
// corresponding tls.Config required by clients to connect to the server
func CreateKeystore(serverName string) (keystore []byte, clientTLSConf *tls.Config, err error) {
	ca, err := newCA()
	if err != nil {
		return nil, nil, err
	}
	server, err := serverCert(serverName, ca)
	if err != nil {
		return nil, nil, err
	}
	keystore, err = createKeystore(ca, server)
	if err != nil {
		return nil, nil, err
	}

	certpool := x509.NewCertPool()
	certpool.AddCert(ca.cert)
	clientTLSConf = &tls.Config{
		RootCAs:    certpool,
		ServerName: serverName,
	}
	return
}

func newCA() (*certHolder, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, err
	}

	ca := &x509.Certificate{
		SerialNumber: big.NewInt(2019),
		Subject: pkix.Name{
			CommonName:         "CA",
			Organization:       []string{"JBoss"},
			OrganizationalUnit: []string{"Intersmash"},
			Locality:           []string{"Red Hat"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().AddDate(10, 0, 0),
		IsCA:                  true,
		BasicConstraintsValid: true,
		PublicKeyAlgorithm:    x509.RSA,
		SignatureAlgorithm:    x509.SHA256WithRSA,
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, ca, ca, &privateKey.PublicKey, privateKey)
	if err != nil {
		return nil, err
	}

	cert, err := x509.ParseCertificate(certBytes)
	if err != nil {
		return nil, err
	}

	return &certHolder{
		privateKey: privateKey,
		cert:       cert,
		certBytes:  certBytes,
	}, nil
}

func serverCert(dnsName string, ca *certHolder) (*certHolder, error) {
	return createGenericCertificate("server", &dnsName, ca)
}

func createGenericCertificate(name string, dnsName *string, ca *certHolder) (*certHolder, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, err
	}

	cert := &x509.Certificate{
		SerialNumber: big.NewInt(serialNumber),
		Subject: pkix.Name{
			CommonName:         name,
			Organization:       []string{"JBoss"},
			OrganizationalUnit: []string{"Intersmash"},
			Locality:           []string{"Red Hat"},
		},
		Issuer:             ca.cert.Subject,
		NotBefore:          time.Now(),
		NotAfter:           time.Now().AddDate(10, 0, 0),
		PublicKeyAlgorithm: x509.RSA,
		SignatureAlgorithm: x509.SHA256WithRSA,
	}
	if dnsName != nil {
		cert.DNSNames = []string{*dnsName}
	}
	serialNumber++
	return createAndParseCert(cert, privateKey, ca)
}

func createAndParseCert(c *x509.Certificate, privateKey *rsa.PrivateKey, ca *certHolder) (*certHolder, error) {
	certBytes, err := x509.CreateCertificate(rand.Reader, c, ca.cert, &privateKey.PublicKey, ca.privateKey)
	if err != nil {
		return nil, err
	}

	cert, err := x509.ParseCertificate(certBytes)
	if err != nil {
		return nil, err
	}

	return &certHolder{
		privateKey: privateKey,
		cert:       cert,
		certBytes:  certBytes,
	}, nil
}

// createKeystore exports the server key pair to PKCS12 via the openssl CLI.
// Keystores produced by the p12 library are rejected by the Java server side
// with "no shared cipher" during the TLS handshake, the openssl output is not.
func createKeystore(ca, server *certHolder) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "keystore")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	privKeyFile := filepath.Join(tmpDir, "server_key.pem")
	certFile := filepath.Join(tmpDir, "server_cert.pem")
	keystoreFile := filepath.Join(tmpDir, "keystore.p12")

	privKeyPEM, err := server.privateKeyPEM()
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(privKeyFile, privKeyPEM, 0600); err != nil {
		return nil, err
	}

	serverCertPEM, err := server.certPEM()
	if err != nil {
		return nil, err
	}
	caCertPEM, err := ca.certPEM()
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(certFile, append(serverCertPEM, caCertPEM...), 0600); err != nil {
		return nil, err
	}

	cmd := exec.Command("openssl", "pkcs12", "-export", "-in", certFile, "-inkey", privKeyFile,
		"-name", server.cert.Subject.CommonName, "-out", keystoreFile, "-password", "pass:"+KeystorePassword, "-noiter", "-nomaciter")
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Error(err, "openssl pkcs12 export failed", "output", string(output))
		return nil, err
	}

	return os.ReadFile(keystoreFile)
}

// privateKeyPEM returns the private key in PEM format
func (c *certHolder) privateKeyPEM() ([]byte, error) {
	privKeyPEM := new(bytes.Buffer)
	err := pem.Encode(privKeyPEM, &pem.Block{
		Type:  keyutil.RSAPrivateKeyBlockType,
		Bytes: x509.MarshalPKCS1PrivateKey(c.privateKey),
	})
	if err != nil {
		return nil, err
	}
	return privKeyPEM.Bytes(), nil
}

// certPEM returns the certificate in PEM format
func (c *certHolder) certPEM() ([]byte, error) {
	cert := new(bytes.Buffer)
	err := pem.Encode(cert, &pem.Block{
		Type:  certutil.CertificateBlockType,
		Bytes: c.certBytes,
	})
	if err != nil {
		return nil, err
	}
	return cert.Bytes(), nil
}
