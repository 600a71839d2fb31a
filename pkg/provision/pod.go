package provision

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
	"github.com/jboss-intersmash/intersmash-tests/pkg/wait"
)

// DeletePodGracelessly deletes the pod with a zero grace period so the
// container has no chance to shut down cleanly. Used by failover tests to
// simulate a node losing a cluster member.
func DeletePodGracelessly(ctx context.Context, k *kubernetes.Kubernetes, namespace, podName string) error {
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      podName,
			Namespace: namespace,
		},
	}
	zero := int64(0)
	if err := k.Client.Delete(ctx, pod, &client.DeleteOptions{GracePeriodSeconds: &zero}); err != nil {
		return fmt.Errorf("unable to delete pod '%s': %w", podName, err)
	}
	return nil
}

// CrashJavaProcess kills the JVM inside the pod with SIGKILL, leaving the pod
// itself in place so the kubelet restarts the container. The server gets no
// opportunity to passivate sessions or complete in-flight transactions.
func CrashJavaProcess(ctx context.Context, k *kubernetes.Kubernetes, namespace, podName string) error {
	_, stderr, err := k.ExecWithOptions(kubernetes.ExecOptions{
		Command:   []string{"bash", "-c", "kill -9 $(pgrep java)"},
		PodName:   podName,
		Namespace: namespace,
	})
	if err != nil {
		return fmt.Errorf("unable to kill java process in pod '%s': %w (stderr: %s)", podName, err, stderr)
	}
	return nil
}

// WaitForPodRestart blocks until the pod container restart count grows past
// the given baseline and the pod reports ready again
func WaitForPodRestart(ctx context.Context, k *kubernetes.Kubernetes, namespace, podName string, previousRestarts int32) error {
	return wait.New(func() (bool, error) {
		pod := &corev1.Pod{}
		if err := k.Client.Get(ctx, client.ObjectKey{Namespace: namespace, Name: podName}, pod); err != nil {
			return false, nil
		}
		if RestartCount(pod) <= previousRestarts {
			return false, nil
		}
		return kubernetes.IsPodReady(*pod), nil
	}).
		Reason(fmt.Sprintf("pod '%s' to restart and become ready", podName)).
		Logger(log).
		WaitFor(ctx)
}

// RestartCount sums the restart counts of all containers in the pod
func RestartCount(pod *corev1.Pod) int32 {
	var restarts int32
	for _, status := range pod.Status.ContainerStatuses {
		restarts += status.RestartCount
	}
	return restarts
}
