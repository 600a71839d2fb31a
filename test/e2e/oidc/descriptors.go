package oidc

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
	keycloakName = "keycloak"
	realmName    = "basic-auth"
	clientName   = "wildfly-basic-elytron-auth-service"
	clientSecret = "3up7r37cr7doidccli7ntpa33word"

	tlsSecretName = keycloakName + "-tls"

	// The realm administrator, allowed to register clients dynamically
	realmAdminUser     = "admin"
	realmAdminPassword = "admin1234pa33word"

	// User granted the role the secured deployment requires
	userWithValidRole     = "user1"
	passwordWithValidRole = "password1"
	// User authenticated by the realm but without the required role
	userWithInvalidRole     = "admin2"
	passwordWithInvalidRole = "password2"

	postgresName     = "postgresql"
	postgresDatabase = "keycloak-db"
	postgresUser     = "user-keycloak"
	postgresPassword = "keycloak-1234"

	wildflyName        = "elytron-oidc-client"
	oidcApplicationDir = "wildfly/elytron-oidc-client-keycloak"
)

// requiredActions the login flow must not interrupt the tests with
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

// keycloakService describes a Keycloak instance backed by the PostgreSQL
// database, serving HTTPS with a generated certificate, with one realm
// importing the test users and the OIDC client of the secured application
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
				// On OpenShift 4.12+ the ingress class must be named
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

// realmImport renders the realm with its users and the pre-configured OIDC
// client of the secured application
func realmImport() (*keycloakv2alpha1.KeycloakRealmImport, error) {
	requiredActions := make([]map[string]interface{}, 0, len(disabledRequiredActions))
	for _, alias := range disabledRequiredActions {
		requiredActions = append(requiredActions, map[string]interface{}{
			"alias":   alias,
			"enabled": false,
		})
	}

	applicationRoot := fmt.Sprintf("http://%s/", utils.Hostname(wildflyName))
	realm := map[string]interface{}{
		"id":              realmName,
		"realm":           realmName,
		"enabled":         true,
		"displayName":     realmName,
		"requiredActions": requiredActions,
		"users": []map[string]interface{}{
			{
				"username":    realmAdminUser,
				"enabled":     true,
				"credentials": []map[string]string{{"type": "password", "value": realmAdminPassword}},
				"realmRoles":  []string{"user", "admin"},
				"clientRoles": map[string][]string{
					"realm-management": {"create-client"},
				},
			},
			{
				"username":    userWithValidRole,
				"enabled":     true,
				"credentials": []map[string]string{{"type": "password", "value": passwordWithValidRole}},
				"realmRoles":  []string{"user"},
			},
			{
				"username":    userWithInvalidRole,
				"enabled":     true,
				"credentials": []map[string]string{{"type": "password", "value": passwordWithInvalidRole}},
				"realmRoles":  []string{"admin"},
			},
		},
		"clients": []map[string]interface{}{
			{
				"clientId":            clientName,
				"enabled":             true,
				"publicClient":        true,
				"standardFlowEnabled": true,
				"rootUrl":             applicationRoot,
				"adminUrl":            applicationRoot,
				"redirectUris":        []string{applicationRoot + "*"},
				"webOrigins":          []string{applicationRoot},
				"secret":              clientSecret,
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

// wildflyOidcApplication describes a server whose deployment is secured by
// the elytron-oidc-client subsystem, configured through the oidc.json bundled
// with the deployment
type wildflyOidcApplication struct {
	server *wildflyv1alpha1.WildFlyServer
	env    []corev1.EnvVar
}

func newWildflyOidcApplication(replicas int32) *wildflyOidcApplication {
	var env []corev1.EnvVar
	env = append(env,
		corev1.EnvVar{Name: "SSO_APP_SERVICE", Value: fmt.Sprintf("https://%s", utils.Hostname(keycloakName))},
		corev1.EnvVar{Name: "OIDC_SECURE_DEPLOYMENT_SECRET", Value: clientSecret},
	)
	return &wildflyOidcApplication{
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

func (a *wildflyOidcApplication) Name() string {
	return a.server.Name
}

func (a *wildflyOidcApplication) WildFlyServer() *wildflyv1alpha1.WildFlyServer {
	return a.server
}

func (a *wildflyOidcApplication) EnvVars() []corev1.EnvVar {
	return a.env
}

// Image is the prebuilt runtime image, deployed when the cluster cannot
// build from source
func (a *wildflyOidcApplication) Image() string {
	return utils.WildflyImage
}

// BuildInput points the on-cluster build at the oidcApplicationDir module of
// the deployments repository
func (a *wildflyOidcApplication) BuildInput() application.BuildInput {
	return application.BuildInput{
		URI: utils.DeploymentsRepo,
		Ref: utils.DeploymentsRef,
		Env: application.NewWildflyConfigurationFromEnv().BuildEnv(oidcApplicationDir),
	}
}
