package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

func envValue(env []corev1.EnvVar, name string) (string, bool) {
	for _, e := range env {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

func TestAdditionalMavenArgsIncludeDistributionProfile(t *testing.T) {
	config := &WildflyConfiguration{TargetDistribution: "jboss-eap"}
	assert.Contains(t, config.AdditionalMavenArgs(), " -Pwildfly-target-distribution.jboss-eap")
}

func TestNewWildflyConfigurationFromEnv(t *testing.T) {
	t.Setenv(TargetDistributionEnv, "jboss-eap")
	t.Setenv(MavenMirrorURLEnv, "https://mirror.example.com/repository")

	config := NewWildflyConfigurationFromEnv()
	assert.Equal(t, "jboss-eap", config.TargetDistribution)
	assert.Equal(t, "https://mirror.example.com/repository", config.MavenMirrorURL)
}

func TestNewWildflyConfigurationFromEnvDefaults(t *testing.T) {
	t.Setenv(TargetDistributionEnv, "")
	t.Setenv(MavenMirrorURLEnv, "")

	config := NewWildflyConfigurationFromEnv()
	assert.Equal(t, DefaultTargetDistribution, config.TargetDistribution)
	assert.Empty(t, config.MavenMirrorURL)
}

func TestBuildEnvRestrictsBuildToModule(t *testing.T) {
	config := &WildflyConfiguration{TargetDistribution: "wildfly"}
	env := config.BuildEnv("wildfly/web-cache-offload-infinispan")

	artifactDirs, ok := envValue(env, "MAVEN_S2I_ARTIFACT_DIRS")
	require.True(t, ok)
	assert.Equal(t, "wildfly/web-cache-offload-infinispan/target", artifactDirs)

	mavenArgs, ok := envValue(env, "MAVEN_ARGS_APPEND")
	require.True(t, ok)
	assert.Contains(t, mavenArgs, "-Pwildfly-target-distribution.wildfly")
	assert.Contains(t, mavenArgs, "-pl wildfly/web-cache-offload-infinispan -am")
	assert.NotContains(t, mavenArgs, "insecure.repositories")

	_, ok = envValue(env, MavenMirrorURLEnv)
	assert.False(t, ok)
}

func TestBuildEnvWithMavenMirror(t *testing.T) {
	config := &WildflyConfiguration{
		TargetDistribution: "wildfly",
		MavenMirrorURL:     "https://mirror.example.com/repository",
	}
	env := config.BuildEnv("wildfly/jms-ssl")

	mirror, ok := envValue(env, MavenMirrorURLEnv)
	require.True(t, ok)
	assert.Equal(t, "https://mirror.example.com/repository", mirror)

	mavenArgs, _ := envValue(env, "MAVEN_ARGS_APPEND")
	assert.Contains(t, mavenArgs, "-Dinsecure.repositories=WARN")
}
