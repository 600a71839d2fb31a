package application

import (
	"fmt"
	"os"

	corev1 "k8s.io/api/core/v1"
)

// Env vars steering the s2i builds of the application server deployments
const (
	TargetDistributionEnv = "WILDFLY_TARGET_DISTRIBUTION"
	MavenMirrorURLEnv     = "MAVEN_MIRROR_URL"

	DefaultTargetDistribution = "wildfly"
)

// WildflyConfiguration derives the Maven arguments of an application server
// s2i build from the target distribution. Building for a productized
// distribution selects a different build profile in the deployments repository.
type WildflyConfiguration struct {
	// TargetDistribution picks the build profile, wildfly or jboss-eap
	TargetDistribution string
	// MavenMirrorURL points builds at a repository mirror when set
	MavenMirrorURL string
}

// NewWildflyConfigurationFromEnv reads the build configuration from the environment
func NewWildflyConfigurationFromEnv() *WildflyConfiguration {
	distribution := os.Getenv(TargetDistributionEnv)
	if distribution == "" {
		distribution = DefaultTargetDistribution
	}
	return &WildflyConfiguration{
		TargetDistribution: distribution,
		MavenMirrorURL:     os.Getenv(MavenMirrorURLEnv),
	}
}

// AdditionalMavenArgs returns the profile selection arguments appended to
// every build of the deployments repository
func (c *WildflyConfiguration) AdditionalMavenArgs() string {
	return fmt.Sprintf(" -Pwildfly-target-distribution.%s", c.TargetDistribution)
}

// BuildEnv assembles the build related env vars of an s2i application built
// from the applicationDir module of the deployments repository: the artifact
// directory, the Maven arguments restricting the build to that module, and the
// mirror configuration when one is set
func (c *WildflyConfiguration) BuildEnv(applicationDir string) []corev1.EnvVar {
	env := []corev1.EnvVar{{
		Name:  "MAVEN_S2I_ARTIFACT_DIRS",
		Value: applicationDir + "/target",
	}}

	mavenArgs := c.AdditionalMavenArgs() + fmt.Sprintf(" -pl %s -am", applicationDir)
	if c.MavenMirrorURL != "" {
		env = append(env, corev1.EnvVar{
			Name:  MavenMirrorURLEnv,
			Value: c.MavenMirrorURL,
		})
		mavenArgs += " -Dinsecure.repositories=WARN"
	}
	env = append(env, corev1.EnvVar{
		Name:  "MAVEN_ARGS_APPEND",
		Value: mavenArgs,
	})
	return env
}
