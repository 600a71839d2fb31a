package artemis

import (
	"fmt"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
)

var log = logf.Log.WithName("artemis-cli")

const cliPath = "/home/jboss/amq-broker/bin/artemis"

// Cli runs the broker management CLI inside a broker pod over the exec API
type Cli struct {
	Kubernetes *kubernetes.Kubernetes
	Namespace  string
	PodName    string
	User       string
	Password   string
}

// QueueStat returns the output of `artemis queue stat --json`, optionally
// restricted to the named queue
func (c *Cli) QueueStat(queueName string) (string, error) {
	command := []string{
		cliPath, "queue", "stat",
		"--url", "tcp://localhost:61616",
		"--user", c.User,
		"--password", c.Password,
		"--json",
	}
	if queueName != "" {
		command = append(command, "--queueName", queueName)
	}
	execOut, execErr, err := c.Kubernetes.ExecWithOptions(kubernetes.ExecOptions{
		Command:   command,
		Namespace: c.Namespace,
		PodName:   c.PodName,
	})
	if err != nil {
		return "", fmt.Errorf("queue stat failed on pod %s: %w, stderr: %s", c.PodName, err, execErr)
	}
	log.V(1).Info("queue stat", "pod", c.PodName, "output", execOut.String())
	return ExtractJSON(execOut.String())
}

// MessageCount sums the messages currently stored for the queue across the
// addresses reported by the broker
func (c *Cli) MessageCount(queueName string) (int, error) {
	jsonOutput, err := c.QueueStat(queueName)
	if err != nil {
		return 0, err
	}
	return SumMessageCounts(jsonOutput, queueName)
}

// MessageCountAcrossPods sums the queue message counts over all broker pods.
// A pod where the CLI fails, typically because the broker is still starting,
// contributes zero instead of failing the whole count.
func MessageCountAcrossPods(k *kubernetes.Kubernetes, namespace string, podNames []string, user, password, queueName string) (int, error) {
	total := 0
	failures := 0
	for _, podName := range podNames {
		cli := &Cli{Kubernetes: k, Namespace: namespace, PodName: podName, User: user, Password: password}
		count, err := cli.MessageCount(queueName)
		if err != nil {
			log.Info("Skipping broker pod, CLI call failed", "pod", podName, "error", err.Error())
			failures++
			continue
		}
		total += count
	}
	if failures == len(podNames) && len(podNames) > 0 {
		return 0, fmt.Errorf("queue stat failed on every broker pod in namespace %s", namespace)
	}
	return total, nil
}
