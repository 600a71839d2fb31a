package provision

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/apis/wildfly/v1alpha1"
	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// WildflyProvisioner drives the WildFly operator. Deploy resolves the
// application image, creates the WildFlyServer CR plus supporting secrets and
// config maps, applies the descriptor env vars and waits for the server pods
// to come up. On OpenShift a descriptor implementing BuildApplication gets its
// image built from source first, everywhere else the prebuilt image of an
// ImageApplication descriptor is used.
type WildflyProvisioner struct {
	Kubernetes  *kubernetes.Kubernetes
	Application application.WildflyApplication
	Namespace   string
	Timeout     time.Duration
	// BuilderImage runs the s2i builds, ignored outside the build path
	BuilderImage string
}

var _ Provisioner = (*WildflyProvisioner)(nil)

func (p *WildflyProvisioner) Name() string {
	return p.Application.Name()
}

func (p *WildflyProvisioner) timeout() time.Duration {
	if p.Timeout == 0 {
		return DefaultDeployTimeout
	}
	return p.Timeout
}

func (p *WildflyProvisioner) Deploy(ctx context.Context) error {
	if provider, ok := p.Application.(application.SecretsProvider); ok {
		if err := createSecrets(ctx, p.Kubernetes, p.Namespace, provider.Secrets()); err != nil {
			return err
		}
	}
	if provider, ok := p.Application.(application.ConfigMapsProvider); ok {
		if err := createConfigMaps(ctx, p.Kubernetes, p.Namespace, provider.ConfigMaps()); err != nil {
			return err
		}
	}

	image, err := p.applicationImage(ctx)
	if err != nil {
		return err
	}
	server := p.Application.WildFlyServer()
	server.Spec.ApplicationImage = image
	if env := p.Application.EnvVars(); len(env) > 0 {
		server.Spec.Env = append(server.Spec.Env, env...)
	}
	if err := createOrFail(ctx, p.Kubernetes, server, p.Namespace); err != nil {
		return err
	}
	return p.waitForServerPods(ctx, server.Spec.Replicas)
}

// applicationImage resolves the image the WildFlyServer CR deploys. The build
// path needs the OpenShift build API, so it is only taken there, other
// clusters deploy the prebuilt image.
func (p *WildflyProvisioner) applicationImage(ctx context.Context) (string, error) {
	if builder, ok := p.Application.(application.BuildApplication); ok {
		openshift, err := p.Kubernetes.IsOpenShift()
		if err != nil {
			return "", err
		}
		if openshift {
			return buildImage(ctx, p.Kubernetes, p.Namespace, p.Name(), p.BuilderImage, builder.BuildInput(), p.timeout())
		}
	}
	if prebuilt, ok := p.Application.(application.ImageApplication); ok {
		return prebuilt.Image(), nil
	}
	return "", fmt.Errorf("descriptor '%s' provides neither a build input nor an image", p.Name())
}

func (p *WildflyProvisioner) Undeploy(ctx context.Context) error {
	server := p.Application.WildFlyServer()
	server.Namespace = p.Namespace
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, server); err != nil {
		return err
	}
	if _, ok := p.Application.(application.BuildApplication); ok {
		openshift, err := p.Kubernetes.IsOpenShift()
		if err != nil {
			return err
		}
		if openshift {
			if err := cleanupBuild(ctx, p.Kubernetes, p.Namespace, p.Name()); err != nil {
				return err
			}
		}
	}
	if provider, ok := p.Application.(application.ConfigMapsProvider); ok {
		for _, cm := range provider.ConfigMaps() {
			cm.Namespace = p.Namespace
			if err := deleteIgnoreNotFound(ctx, p.Kubernetes, cm); err != nil {
				return err
			}
		}
	}
	if provider, ok := p.Application.(application.SecretsProvider); ok {
		for _, secret := range provider.Secrets() {
			secret.Namespace = p.Namespace
			if err := deleteIgnoreNotFound(ctx, p.Kubernetes, secret); err != nil {
				return err
			}
		}
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, server.PodSelectorLabels(), 0, p.timeout())
}

// Scale changes the server replica count. Scaling down goes through the
// operator's transaction recovery scaledown, the wait covers the pods that
// linger in SCALING_DOWN states until recovery completes.
func (p *WildflyProvisioner) Scale(ctx context.Context, replicas int32, waitForReady bool) error {
	server := &v1alpha1.WildFlyServer{}
	if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, server); err != nil {
		return err
	}
	if err := updateWithRetry(ctx, p.Kubernetes, server, func() {
		server.Spec.Replicas = replicas
	}); err != nil {
		return err
	}
	if !waitForReady {
		return nil
	}
	return p.waitForServerPods(ctx, replicas)
}

func (p *WildflyProvisioner) Pods(ctx context.Context) ([]corev1.Pod, error) {
	return podsBySelector(ctx, p.Kubernetes, p.Namespace, p.Application.WildFlyServer().PodSelectorLabels())
}

// URL resolves the route the operator creates for the server, falling back to
// the loadbalancer service when routes are disabled or unavailable
func (p *WildflyProvisioner) URL(ctx context.Context) (string, error) {
	server := p.Application.WildFlyServer()
	if !server.Spec.DisableHTTPRoute {
		if url, err := serviceURL(ctx, p.Kubernetes, p.Namespace, p.Name(), "http"); err == nil {
			return url, nil
		}
	}
	return serviceURL(ctx, p.Kubernetes, p.Namespace, server.LoadBalancerName(), "http")
}

// waitForServerPods blocks until the CR status converges on the expected
// replica count with every pod in ACTIVE state, then until the pods are ready
func (p *WildflyProvisioner) waitForServerPods(ctx context.Context, replicas int32) error {
	server := p.Application.WildFlyServer()
	err := wait.New(func() (bool, error) {
		live := &v1alpha1.WildFlyServer{}
		if err := p.Kubernetes.Client.Get(ctx, types.NamespacedName{Namespace: p.Namespace, Name: p.Name()}, live); err != nil {
			return false, nil
		}
		if live.Status.Replicas != replicas || len(live.Status.Pods) != int(replicas) {
			return false, nil
		}
		for _, pod := range live.Status.Pods {
			if pod.State != v1alpha1.PodStateActive {
				return false, nil
			}
		}
		return true, nil
	}).
		Timeout(p.timeout()).
		Reason(fmt.Sprintf("wildfly server '%s' to report %d active pod(s)", p.Name(), replicas)).
		Logger(log).
		WaitFor(ctx)
	if err != nil {
		return err
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, server.PodSelectorLabels(), int(replicas), p.timeout())
}
