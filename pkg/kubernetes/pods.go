package kubernetes

import (
	"sort"

	corev1 "k8s.io/api/core/v1"
)

func AreAllPodsReady(podList *corev1.PodList) bool {
	for _, pod := range podList.Items {
		containerStatuses := pod.Status.ContainerStatuses
		if len(containerStatuses) == 0 || !containerStatuses[0].Ready {
			return false
		}
	}

	return true
}

func IsPodReady(pod corev1.Pod) bool {
	for _, cond := range pod.Status.Conditions {
		if cond.Type == corev1.ContainersReady && cond.Status == corev1.ConditionTrue {
			return true
		}
	}
	return false
}

// SortPodsByName gives the pod list a stable order so that tests
// targeting "the first pod" hit the same pod on every poll
func SortPodsByName(pods *corev1.PodList) {
	sort.Slice(pods.Items, func(i, j int) bool {
		return pods.Items[i].Name < pods.Items[j].Name
	})
}

// GetContainer looks up the named container in the pod spec, nil when absent
func GetContainer(name string, podSpec *corev1.PodSpec) *corev1.Container {
	for i, c := range podSpec.Containers {
		if c.Name == name {
			return &podSpec.Containers[i]
		}
	}
	return nil
}
