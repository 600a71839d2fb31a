package saml

import (
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	keycloakv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/keycloak/v2alpha1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/keystore"
	"github.com/jboss-intersmash/intersmash-tests/pkg/provision"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const (
	keycloakName  = "keycloak"
	realmName     = "basic-auth-realm"
	tlsSecretName = keycloakName + "-tls"

	// Credentials the adapter uses against the realm
	ssoUsername = "client"
	ssoPassword = "creator"

	// User granted the role the web.xml of the deployment requires
	userName     = "user"
	userPassword = "password"
	// User known to the realm but holding an unrelated role
	anotherUserName     = "another-user"
	anotherUserPassword = "another-password"

	postgresName     = "postgresql"
	postgresDatabase = "keycloak-db"
	postgresUser     = "user-keycloak"
	postgresPassword = "keycloak-1234"

	wildflyName        = "keycloak-saml-adapter"
	samlApplicationDir = "wildfly/keycloak-saml-adapter"
)

var disabledRequiredActions = []string{
	"CONFIGURE_TOTP",
	"TERMS_AND_CONDITIONS",
	"UPDATE_PASSWORD",
	"UPDATE_PROFILE",
	"VERIFY_EMAIL",
	"delete_account",
	"webauthn-register",
	"webauthn-register-passwordless",
	"VERIFY_PROFILE",
	"delete_credential",
	"update_user_locale",
}

// keycloakService describes the identity provider with a realm carrying the
// pre-configured SAML client of the secured application
type keycloakService struct {
	keycloak     *keycloakv2alpha1.Keycloak
	realmImports []*keycloakv2alpha1.KeycloakRealmImport
	secrets      []*corev1.Secret
}

func newKeycloakService(postgres *provision.PostgresProvisioner) (*keycloakService, error) {
	hostName := utils.Hostname(keycloakName)
	cert, key, _, err := keystore.CreateServerCertificates(hostName)
	if err != nil {
		return nil, err
	}
	tlsSecret := keystore.CertSecret(tlsSecretName, "", cert, key)
	tlsSecret.Labels = map[string]string{"app": keycloakName}

	realm, err := realmImport()
	if err != nil {
		return nil, err
	}

	return &keycloakService{
		keycloak: &keycloakv2alpha1.Keycloak{
			ObjectMeta: metav1.ObjectMeta{
				Name:   keycloakName,
				Labels: map[string]string{"app": keycloakName},
			},
			Spec: keycloakv2alpha1.KeycloakSpec{
				Instances: 1,
				Database: &keycloakv2alpha1.DatabaseSpec{
					Vendor:   "postgres",
					Host:     postgres.ServiceName(),
					Port:     provision.PostgresPort,
					Database: postgresDatabase,
					UsernameSecret: &keycloakv2alpha1.SecretKeySelector{
						Name: postgres.SecretName(),
						Key:  provision.PostgresUserKey,
					},
					PasswordSecret: &keycloakv2alpha1.SecretKeySelector{
						Name: postgres.SecretName(),
						Key:  provision.PostgresPasswordKey,
					},
				},
				Hostname: &keycloakv2alpha1.HostnameSpec{
					Hostname: hostName,
				},
				HTTP: &keycloakv2alpha1.HTTPSpec{
					TLSSecret: tlsSecretName,
				},
				Ingress: &keycloakv2alpha1.IngressSpec{
					Enabled:   true,
					ClassName: "openshift-default",
				},
				StartOptimized: false,
			},
		},
		realmImports: []*keycloakv2alpha1.KeycloakRealmImport{realm},
		secrets:      []*corev1.Secret{tlsSecret},
	}, nil
}

func (s *keycloakService) Name() string {
	return s.keycloak.Name
}

func (s *keycloakService) Keycloak() *keycloakv2alpha1.Keycloak {
	return s.keycloak
}

func (s *keycloakService) RealmImports() []*keycloakv2alpha1.KeycloakRealmImport {
	return s.realmImports
}

func (s *keycloakService) Secrets() []*corev1.Secret {
	return s.secrets
}

// realmImport renders the realm. The SAML client points back at the
// application route, the admin URL is the SAML processing endpoint used for
// both the assertion consumer and single logout services.
func realmImport() (*keycloakv2alpha1.KeycloakRealmImport, error) {
	requiredActions := make([]map[string]interface{}, 0, len(disabledRequiredActions))
	for _, alias := range disabledRequiredActions {
		requiredActions = append(requiredActions, map[string]interface{}{
			"alias":   alias,
			"enabled": false,
		})
	}

	applicationHost := utils.Hostname(wildflyName)
	realm := map[string]interface{}{
		"id":              realmName,
		"realm":           realmName,
		"enabled":         true,
		"displayName":     realmName,
		"requiredActions": requiredActions,
		"users": []map[string]interface{}{
			{
				"username":    ssoUsername,
				"enabled":     true,
				"credentials": []map[string]string{{"type": "password", "value": ssoPassword}},
				"clientRoles": map[string][]string{
					"realm-management": {"create-client"},
				},
			},
			{
				"username":    userName,
				"enabled":     true,
				"credentials": []map[string]string{{"type": "password", "value": userPassword}},
				"realmRoles":  []string{"user-role"},
			},
			{
				"username":    anotherUserName,
				"enabled":     true,
				"credentials": []map[string]string{{"type": "password", "value": anotherUserPassword}},
				"realmRoles":  []string{"another-role"},
			},
		},
		"clients": []map[string]interface{}{
			{
				"clientId":            wildflyName,
				"enabled":             true,
				"standardFlowEnabled": true,
				"protocol":            "saml",
				"baseUrl":             fmt.Sprintf("https://%s/", applicationHost),
				"adminUrl":            fmt.Sprintf("https://%s/secured/saml", applicationHost),
				"fullScopeAllowed":    true,
			},
		},
	}
	raw, err := json.Marshal(realm)
	if err != nil {
		return nil, err
	}

	return &keycloakv2alpha1.KeycloakRealmImport{
		ObjectMeta: metav1.ObjectMeta{
			Name:   realmName,
			Labels: map[string]string{"app": keycloakName},
		},
		Spec: keycloakv2alpha1.KeycloakRealmImportSpec{
			KeycloakCRName: keycloakName,
			Realm:          apiextensionsv1.JSON{Raw: raw},
		},
	}, nil
}

// wildflySamlApplication describes a server secured by the Keycloak SAML
// adapter, exposing a servlet and an EJB that both surface the authenticated
// principal
type wildflySamlApplication struct {
	server *wildflyv1alpha1.WildFlyServer
	env    []corev1.EnvVar
}

func newWildflySamlApplication(replicas int32) *wildflySamlApplication {
	var env []corev1.EnvVar
	env = append(env,
		corev1.EnvVar{Name: "SSO_URL", Value: fmt.Sprintf("https://%s", utils.Hostname(keycloakName))},
		corev1.EnvVar{Name: "SSO_REALM", Value: realmName},
		corev1.EnvVar{Name: "SSO_USERNAME", Value: ssoUsername},
		corev1.EnvVar{Name: "SSO_PASSWORD", Value: ssoPassword},
		corev1.EnvVar{Name: "SSO_SAML_LOGOUT_PAGE", Value: "/index.jsp"},
	)
	return &wildflySamlApplication{
		server: &wildflyv1alpha1.WildFlyServer{
			ObjectMeta: metav1.ObjectMeta{
				Name: wildflyName,
			},
			Spec: wildflyv1alpha1.WildFlyServerSpec{
				Replicas: replicas,
			},
		},
		env: env,
	}
}

func (a *wildflySamlApplication) Name() string {
	return a.server.Name
}

func (a *wildflySamlApplication) WildFlyServer() *wildflyv1alpha1.WildFlyServer {
	return a.server
}

func (a *wildflySamlApplication) EnvVars() []corev1.EnvVar {
	return a.env
}

// Image is the prebuilt runtime image, deployed when the cluster cannot
// build from source
func (a *wildflySamlApplication) Image() string {
	return utils.WildflyImage
}

// BuildInput points the on-cluster build at the samlApplicationDir module of
// the deployments repository
func (a *wildflySamlApplication) BuildInput() application.BuildInput {
	return application.BuildInput{
		URI: utils.DeploymentsRepo,
		Ref: utils.DeploymentsRef,
		Env: application.NewWildflyConfigurationFromEnv().BuildEnv(samlApplicationDir),
	}
}
