package utils

import (
	"os"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

var (
	TestTimeout         = timeout("TEST_TIMEOUT", "10m")
	SinglePodTimeout    = timeout("TEST_SINGLE_POD_TIMEOUT", "5m")
	RouteTimeout        = timeout("TEST_ROUTE_TIMEOUT", "4m")
	DefaultPollPeriod   = timeout("TEST_DEFAULT_POLL_PERIOD", "1s")
	MaxWaitTimeout      = timeout("TEST_MAX_WAIT_TIMEOUT", "3m")
	SessionExpiryMargin = timeout("TEST_SESSION_EXPIRY_MARGIN", "30s")

	Namespace       = strings.ToLower(GetEnvWithDefault("TESTING_NAMESPACE", "intersmash-testing"))
	CleanupOnFinish = strings.ToUpper(GetEnvWithDefault("CLEANUP_ON_FINISH", "true")) == "TRUE"
	DeploymentsRepo = GetEnvWithDefault("TEST_DEPLOYMENTS_REPOSITORY", "https://github.com/Intersmash/intersmash.git")
	DeploymentsRef  = GetEnvWithDefault("TEST_DEPLOYMENTS_REF", "main")
	WildflyImage    = GetEnvWithDefault("WILDFLY_IMAGE", "quay.io/wildfly/wildfly-runtime:latest")
	// WildflyBuilderImage runs the on-cluster s2i builds of the deployments repository
	WildflyBuilderImage = GetEnvWithDefault("WILDFLY_BUILDER_IMAGE", "quay.io/wildfly/wildfly-s2i:latest")
	BrokerCliTimeout    = timeout("TEST_BROKER_CLI_TIMEOUT", "2m")

	// RouteDomain is the wildcard application domain of the cluster router,
	// needed when a route hostname must be known before the route exists
	RouteDomain = GetEnvWithDefault("TEST_ROUTE_DOMAIN", "apps.example.com")
)

// Hostname returns the hostname the router assigns to the default route of
// the named application in the testing namespace
func Hostname(appName string) string {
	return appName + "-" + Namespace + "." + RouteDomain
}

// DeleteOpts is used when deleting resources
var DeleteOpts = []client.DeleteOption{
	client.GracePeriodSeconds(int64(0)),
	client.PropagationPolicy(metav1.DeletePropagationBackground),
}

// GetEnvWithDefault returns the env var value or defValue when unset
func GetEnvWithDefault(name, defValue string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return defValue
}

func timeout(env, defVal string) time.Duration {
	duration, err := time.ParseDuration(GetEnvWithDefault(env, defVal))
	ExpectNoError(err)
	return duration
}
