// Package keystore generates the PKCS12 keystores, truststores and secrets
// used to secure the endpoints of the services under test.
package keystore

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

var log = logf.Log.WithName("keystore")

const (
	keystoreFileName    = "keystore.pkcs12"
	certificateFileName = "certificate.crt"
	truststoreFileName  = "truststore.pkcs12"
)

// CertificateInfo holds the paths of a generated keystore, its certificate in
// PEM format and a truststore trusting that certificate
type CertificateInfo struct {
	HostName  string
	KeyAlias  string
	StorePass string

	Keystore    string
	Certificate string
	Truststore  string
}

// Generator produces keytool backed certificates under a working directory.
// Generated material is cached per hostname so that repeated calls for the
// same host reuse the same keystore.
type Generator struct {
	BaseDir string
}

// NewGenerator returns a Generator writing under dir, tmp/keystores when empty
func NewGenerator(dir string) *Generator {
	if dir == "" {
		dir = filepath.Join("tmp", "keystores")
	}
	return &Generator{BaseDir: dir}
}

// Generate creates a PKCS12 keystore with a self-signed certificate for hostName,
// exports the certificate in PEM format and builds a truststore containing it.
// The setup consists of three keytool calls:
//
//	keytool -genkeypair -noprompt -alias <alias> -keyalg RSA -keysize 2048 -sigalg SHA256withRSA \
//	        -dname "CN=<host>" -validity 365 -keystore keystore.pkcs12 -storepass <pass> \
//	        -storetype PKCS12 -ext 'san=dns:*.<host>'
//	keytool -exportcert -noprompt -rfc -alias <alias> -file certificate.crt ...
//	keytool -import -v -trustcacerts -noprompt -alias <alias> -file certificate.crt -keystore truststore.pkcs12 ...
func (g *Generator) Generate(hostName, keyAlias, storePass string, subjectAlternativeNames []string) (*CertificateInfo, error) {
	finalDir, err := filepath.Abs(filepath.Join(g.BaseDir, hostName))
	if err != nil {
		return nil, err
	}
	info := &CertificateInfo{
		HostName:    hostName,
		KeyAlias:    keyAlias,
		StorePass:   storePass,
		Keystore:    filepath.Join(finalDir, keystoreFileName),
		Certificate: filepath.Join(finalDir, certificateFileName),
		Truststore:  filepath.Join(finalDir, truststoreFileName),
	}

	if _, err := os.Stat(finalDir); os.IsNotExist(err) {
		if err := os.MkdirAll(finalDir, 0755); err != nil {
			return nil, err
		}
		// Keystore containing the private key + self-signed certificate
		if err := processCall(finalDir, "keytool", "-genkeypair", "-noprompt", "-alias", keyAlias, "-keyalg", "RSA",
			"-keysize", "2048", "-sigalg", "SHA256withRSA", "-dname", "CN="+hostName,
			"-validity", "365", "-keystore", keystoreFileName, "-storepass", storePass, "-storetype",
			"PKCS12", "-ext", formatSubjectAlternativeNames(hostName, subjectAlternativeNames)); err != nil {
			return nil, err
		}
		// Extract the self-signed certificate from the keystore
		if err := processCall(finalDir, "keytool", "-exportcert", "-noprompt", "-rfc", "-alias", keyAlias, "-file",
			certificateFileName, "-keystore", keystoreFileName, "-storepass", storePass, "-storetype", "PKCS12"); err != nil {
			return nil, err
		}
		// Truststore containing the self-signed certificate
		if err := processCall(finalDir, "keytool", "-import", "-v", "-trustcacerts", "-noprompt", "-alias", keyAlias, "-file",
			certificateFileName, "-keystore", truststoreFileName, "-storepass", storePass, "-storetype", "PKCS12"); err != nil {
			return nil, err
		}
	}

	for _, file := range []string{info.Keystore, info.Certificate, info.Truststore} {
		if _, err := os.Stat(file); err != nil {
			return nil, fmt.Errorf("expected generated file %s: %w", file, err)
		}
	}
	return info, nil
}

// KeystoreBytes reads the generated keystore
func (c *CertificateInfo) KeystoreBytes() ([]byte, error) {
	return os.ReadFile(c.Keystore)
}

// TruststoreBytes reads the generated truststore
func (c *CertificateInfo) TruststoreBytes() ([]byte, error) {
	return os.ReadFile(c.Truststore)
}

// formatSubjectAlternativeNames renders the -ext san= keytool argument. Names
// without an explicit type get the dns: prefix, an empty list yields a wildcard
// entry for the hostname.
func formatSubjectAlternativeNames(hostName string, subjectAlternativeNames []string) string {
	if len(subjectAlternativeNames) == 0 {
		return fmt.Sprintf("san=dns:*.%s", hostName)
	}
	formatted := make([]string, 0, len(subjectAlternativeNames))
	for _, san := range subjectAlternativeNames {
		if strings.Contains(san, ":") {
			formatted = append(formatted, san)
		} else {
			formatted = append(formatted, fmt.Sprintf("dns:%s", san))
		}
	}
	return fmt.Sprintf("san=%s", strings.Join(formatted, ","))
}

func processCall(cwd string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = cwd
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error(err, "command failed", "command", name+" "+strings.Join(args, " "), "output", string(output))
		return fmt.Errorf("failed executing %s %s: %w", name, strings.Join(args, " "), err)
	}
	log.V(1).Info("command succeeded", "command", name, "output", string(output))
	return nil
}
