package provision

import (
	"context"
	"fmt"

	routev1 "github.com/openshift/api/route/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// serviceURL resolves the externally reachable URL of the named service.
// On OpenShift the route with the same name wins. Elsewhere the service is
// inspected directly: a NodePort service resolves against a node host, a
// LoadBalancer service against its ingress address.
func serviceURL(ctx context.Context, k *kubernetes.Kubernetes, namespace, name, scheme string) (string, error) {
	openshift, err := k.IsOpenShift()
	if err != nil {
		return "", err
	}
	if openshift {
		if url, err := routeURL(ctx, k, namespace, name, scheme); err == nil {
			return url, nil
		}
		// No route with that name, fall through to the service itself
	}

	service := &corev1.Service{}
	if err := k.Client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, service); err != nil {
		return "", fmt.Errorf("unable to resolve external URL of service '%s': %w", name, err)
	}

	switch service.Spec.Type {
	case corev1.ServiceTypeNodePort:
		host, err := k.GetNodeHost(log, ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s://%s:%d", scheme, host, k.GetNodePort(service)), nil
	case corev1.ServiceTypeLoadBalancer:
		var hostAndPort string
		err := wait.New(func() (bool, error) {
			if err := k.Client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, service); err != nil {
				return false, nil
			}
			addr, err := k.GetExternalAddress(service)
			if err != nil {
				return false, nil
			}
			hostAndPort = addr
			return true, nil
		}).
			ExponentialBackoff(defaultPollPeriod, maxPollPeriod).
			Reason(fmt.Sprintf("load balancer address of service '%s'", name)).
			Logger(log).
			WaitFor(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s://%s", scheme, hostAndPort), nil
	default:
		return "", fmt.Errorf("service '%s' of type %s is not externally reachable", name, service.Spec.Type)
	}
}

func routeURL(ctx context.Context, k *kubernetes.Kubernetes, namespace, name, scheme string) (string, error) {
	route := &routev1.Route{}
	if err := k.Client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, route); err != nil {
		return "", err
	}
	if route.Spec.Host == "" {
		return "", fmt.Errorf("route '%s' has no host assigned", name)
	}
	if route.Spec.TLS != nil {
		return fmt.Sprintf("https://%s", route.Spec.Host), nil
	}
	return fmt.Sprintf("%s://%s", scheme, route.Spec.Host), nil
}
