package webcache

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	ispnv1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v1"
	ispnv2alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/infinispan/v2alpha1"
	wildflyv1alpha1 "github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/keystore"
	"github.com/jboss-intersmash/intersmash-tests/test/e2e/utils"
)

const (
	infinispanName = "infinispan"
	wildflyName    = "wildfly-session-app"

	cacheUsername         = "foo"
	cachePassword         = "bar"
	credentialsSecretName = "infinispan-custom-credentials-secret"

	offloadApplicationDir = "wildfly/wildfly-offload-sessions-to-infinispan"
)

var identitiesYaml = []byte(fmt.Sprintf(`credentials:
  - username: %s
    password: %s
    roles:
      - admin
`, cacheUsername, cachePassword))

// infinispanService describes an Infinispan cluster with custom credentials
type infinispanService struct {
	infinispan *ispnv1.Infinispan
	secrets    []*corev1.Secret
}

func newInfinispanService(replicas int32) *infinispanService {
	return &infinispanService{
		infinispan: &ispnv1.Infinispan{
			ObjectMeta: metav1.ObjectMeta{
				Name:   infinispanName,
				Labels: map[string]string{"app": "datagrid"},
			},
			Spec: ispnv1.InfinispanSpec{
				Replicas: replicas,
				Security: &ispnv1.InfinispanSecurity{
					EndpointSecretName: credentialsSecretName,
				},
			},
		},
		secrets: []*corev1.Secret{
			keystore.IdentitiesSecret(credentialsSecretName, "", identitiesYaml),
		},
	}
}

func (s *infinispanService) Name() string {
	return s.infinispan.Name
}

func (s *infinispanService) Infinispan() *ispnv1.Infinispan {
	return s.infinispan
}

func (s *infinispanService) Caches() []*ispnv2alpha1.Cache {
	return nil
}

func (s *infinispanService) Secrets() []*corev1.Secret {
	return s.secrets
}

// wildflySessionApplication describes a distributable application whose web
// sessions are offloaded to the remote Infinispan service
type wildflySessionApplication struct {
	server *wildflyv1alpha1.WildFlyServer
	env    []corev1.EnvVar
}

func newWildflySessionApplication(namespace string, replicas int32) *wildflySessionApplication {
	var env []corev1.EnvVar
	env = append(env,
		corev1.EnvVar{Name: "APP_NAME", Value: infinispanName},
		corev1.EnvVar{Name: "INFINISPAN_HOST", Value: infinispanName},
		corev1.EnvVar{Name: "INFINISPAN_PORT", Value: "11222"},
		corev1.EnvVar{Name: "KUBERNETES_NAMESPACE", Value: namespace},
		corev1.EnvVar{Name: "CACHE_USERNAME", Value: cacheUsername},
		corev1.EnvVar{Name: "CACHE_PASSWORD", Value: cachePassword},
	)
	return &wildflySessionApplication{
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

func (a *wildflySessionApplication) Name() string {
	return a.server.Name
}

func (a *wildflySessionApplication) WildFlyServer() *wildflyv1alpha1.WildFlyServer {
	return a.server
}

func (a *wildflySessionApplication) EnvVars() []corev1.EnvVar {
	return a.env
}

// Image is the prebuilt runtime image, deployed when the cluster cannot
// build from source
func (a *wildflySessionApplication) Image() string {
	return utils.WildflyImage
}

// BuildInput points the on-cluster build at the offloadApplicationDir module of
// the deployments repository
func (a *wildflySessionApplication) BuildInput() application.BuildInput {
	return application.BuildInput{
		URI: utils.DeploymentsRepo,
		Ref: utils.DeploymentsRef,
		Env: application.NewWildflyConfigurationFromEnv().BuildEnv(offloadApplicationDir),
	}
}
