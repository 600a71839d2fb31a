package provision

import (
	"context"
	"fmt"
	"time"

	buildv1 "github.com/openshift/api/build/v1"
	imagev1 "github.com/openshift/api/image/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jboss-intersmash/intersmash-tests/pkg/application"
	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// internalRegistry is the in-cluster address of the integrated registry,
// pullable from the build output image stream without exposing the registry
const internalRegistry = "image-registry.openshift-image-registry.svc:5000"

// buildImage runs an s2i build of the application source on the cluster. It
// creates an image stream for the output and a build config with a config
// change trigger, so the first build starts as soon as the config lands, then
// blocks until that build completes. The returned pullspec points at the
// built image through the internal registry.
func buildImage(ctx context.Context, k *kubernetes.Kubernetes, namespace, name, builderImage string, input application.BuildInput, timeout time.Duration) (string, error) {
	imageStream := &imagev1.ImageStream{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
	}
	if err := createOrFail(ctx, k, imageStream, namespace); err != nil {
		return "", err
	}

	buildConfig := &buildv1.BuildConfig{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Spec: buildv1.BuildConfigSpec{
			CommonSpec: buildv1.CommonSpec{
				Source: buildv1.BuildSource{
					Type: buildv1.BuildSourceGit,
					Git: &buildv1.GitBuildSource{
						URI: input.URI,
						Ref: input.Ref,
					},
				},
				Strategy: buildv1.BuildStrategy{
					Type: buildv1.SourceBuildStrategyType,
					SourceStrategy: &buildv1.SourceBuildStrategy{
						From: corev1.ObjectReference{
							Kind: "DockerImage",
							Name: builderImage,
						},
						Env: input.Env,
					},
				},
				Output: buildv1.BuildOutput{
					To: &corev1.ObjectReference{
						Kind: "ImageStreamTag",
						Name: name + ":latest",
					},
				},
			},
			Triggers: []buildv1.BuildTriggerPolicy{{
				Type: buildv1.ConfigChangeBuildTriggerType,
			}},
		},
	}
	if err := createOrFail(ctx, k, buildConfig, namespace); err != nil {
		return "", err
	}

	// The config change trigger names the first build <name>-1
	buildName := name + "-1"
	err := wait.New(func() (bool, error) {
		build := &buildv1.Build{}
		if err := k.Client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: buildName}, build); err != nil {
			return false, nil
		}
		switch build.Status.Phase {
		case buildv1.BuildPhaseComplete:
			return true, nil
		case buildv1.BuildPhaseFailed, buildv1.BuildPhaseError, buildv1.BuildPhaseCancelled:
			return false, fmt.Errorf("build '%s' ended in phase %s: %s", buildName, build.Status.Phase, build.Status.Message)
		default:
			return false, nil
		}
	}).
		Timeout(timeout).
		ExponentialBackoff(defaultPollPeriod, maxPollPeriod).
		Reason(fmt.Sprintf("build '%s' to complete", buildName)).
		Logger(log).
		WaitFor(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s:latest", internalRegistry, namespace, name), nil
}

// cleanupBuild removes the build config and the output image stream. Builds
// owned by the config are garbage collected with it.
func cleanupBuild(ctx context.Context, k *kubernetes.Kubernetes, namespace, name string) error {
	buildConfig := &buildv1.BuildConfig{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
	}
	if err := deleteIgnoreNotFound(ctx, k, buildConfig); err != nil {
		return err
	}
	imageStream := &imagev1.ImageStream{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
	}
	return deleteIgnoreNotFound(ctx, k, imageStream)
}
