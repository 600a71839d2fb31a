package kubernetes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/selection"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/remotecommand"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Kubernetes abstracts interaction with a Kubernetes cluster
type Kubernetes struct {
	Client     client.Client
	RestClient rest.Interface
	RestConfig *rest.Config
}

// NewKubernetesFromLocalConfig creates a new Kubernetes instance from configuration.
// The configuration is resolved locally from known locations.
func NewKubernetesFromLocalConfig(scheme *runtime.Scheme, ctx string) (*Kubernetes, error) {
	config := resolveConfig(ctx)
	if config == nil {
		return nil, fmt.Errorf("unable to resolve cluster configuration")
	}
	return NewKubernetesFromConfig(config, scheme)
}

// NewKubernetesFromConfig creates a new Kubernetes instance from the passed REST configuration
func NewKubernetesFromConfig(config *rest.Config, scheme *runtime.Scheme) (*Kubernetes, error) {
	kubeClient, err := client.New(config, client.Options{Scheme: scheme})
	if err != nil {
		return nil, err
	}
	config = setConfigDefaults(config)
	restClient, err := rest.RESTClientFor(config)
	if err != nil {
		return nil, err
	}
	return &Kubernetes{
		Client:     kubeClient,
		RestClient: restClient,
		RestConfig: config,
	}, nil
}

// IsGroupVersionSupported queries the discovery API for the given kind, allowing
// callers to skip product suites whose operators are not installed on the cluster
func (k Kubernetes) IsGroupVersionSupported(groupVersion string, kind string) (bool, error) {
	cli, err := discovery.NewDiscoveryClientForConfig(k.RestConfig)
	if err != nil {
		return false, err
	}
	res, err := cli.ServerResourcesForGroupVersion(groupVersion)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	for _, v := range res.APIResources {
		if v.Kind == kind {
			return true, nil
		}
	}

	return false, nil
}

// IsOpenShift returns true when the cluster serves the route.openshift.io API
func (k Kubernetes) IsOpenShift() (bool, error) {
	return k.IsGroupVersionSupported("route.openshift.io/v1", "Route")
}

// GetSecret returns secret associated with given secret name
func (k Kubernetes) GetSecret(secretName, namespace string, ctx context.Context) (*corev1.Secret, error) {
	secret := &corev1.Secret{}
	err := k.Client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: secretName}, secret)
	if err != nil {
		return nil, err
	}
	return secret, err
}

// ExecOptions specify execution options
type ExecOptions struct {
	Container string
	Command   []string
	Namespace string
	PodName   string
}

// ExecWithOptions executes command on pod
// command example { "/usr/bin/ls", "folderName" }
func (k Kubernetes) ExecWithOptions(options ExecOptions) (bytes.Buffer, string, error) {
	execRequest := k.RestClient.Post().
		Resource("pods").
		Name(options.PodName).
		Namespace(options.Namespace).
		SubResource("exec").
		VersionedParams(&corev1.PodExecOptions{
			Container: options.Container,
			Command:   options.Command,
			Stdin:     false,
			Stdout:    true,
			Stderr:    true,
			TTY:       false,
		}, scheme.ParameterCodec)
	var execOut, execErr bytes.Buffer
	exec, err := remotecommand.NewSPDYExecutor(k.RestConfig, "POST", execRequest.URL())
	if err != nil {
		return execOut, "", err
	}
	err = exec.StreamWithContext(context.TODO(), remotecommand.StreamOptions{
		Stdin:  nil,
		Stdout: &execOut,
		Stderr: &execErr,
		Tty:    false,
	})
	if err != nil {
		return execOut, execErr.String(), err
	}

	return execOut, "", err
}

func resolveConfig(ctx string) *rest.Config {
	internal, _ := rest.InClusterConfig()
	if internal == nil {
		kubeConfig := FindKubeConfig()
		configOvr := clientcmd.ConfigOverrides{}
		if ctx != "" {
			configOvr.CurrentContext = ctx
		}
		clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			&clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeConfig},
			&configOvr)
		external, _ := clientConfig.ClientConfig()
		return external
	}
	return internal
}

func (k Kubernetes) GetNodePort(service *corev1.Service) int32 {
	return service.Spec.Ports[0].NodePort
}

// FindKubeConfig returns local Kubernetes configuration
func FindKubeConfig() string {
	if kubeConfig := os.Getenv("KUBECONFIG"); kubeConfig != "" {
		return kubeConfig
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kube", "config")
}

func setConfigDefaults(config *rest.Config) *rest.Config {
	gv := corev1.SchemeGroupVersion
	config.GroupVersion = &gv
	config.APIPath = "/api"
	config.NegotiatedSerializer = scheme.Codecs.WithoutConversion()
	config.UserAgent = rest.DefaultKubernetesUserAgent()
	return config
}

func (k Kubernetes) GetNodeHost(logger logr.Logger, ctx context.Context) (string, error) {
	//The IPs must be fetch. Some cases, the API server (which handles REST requests) isn't the same as the worker
	//So, we get the workers list. It needs some permissions cluster-reader permission
	//oc create clusterrolebinding <name> -n ${NAMESPACE} --clusterrole=cluster-reader --serviceaccount=${NAMESPACE}:<account-name>
	workerList := &corev1.NodeList{}

	//select workers first
	req, err := labels.NewRequirement("node-role.kubernetes.io/worker", selection.Exists, nil)
	if err != nil {
		return "", err
	}
	listOps := &client.ListOptions{
		LabelSelector: labels.NewSelector().Add(*req),
	}
	err = k.Client.List(ctx, workerList, listOps)

	if err != nil || len(workerList.Items) == 0 {
		// Fallback selecting everything
		err = k.Client.List(ctx, workerList, &client.ListOptions{})
		if err != nil {
			return "", err
		}
	}

	for _, node := range workerList.Items {
		//iterate over the all the nodes and return the first ready
		nodeStatus := node.Status
		for _, nodeCondition := range nodeStatus.Conditions {
			if nodeCondition.Type == corev1.NodeReady && nodeCondition.Status == corev1.ConditionTrue && len(nodeStatus.Addresses) > 0 {
				for _, addressType := range []corev1.NodeAddressType{corev1.NodeExternalIP, corev1.NodeInternalIP} {
					if host := GetNodeAddress(node, addressType); host != "" {
						logger.Info("Found ready worker node.", "Host", host)
						return host, nil
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no worker node found")
}

func GetNodeAddress(node corev1.Node, addressType corev1.NodeAddressType) string {
	for _, a := range node.Status.Addresses {
		if a.Type == addressType && a.Address != "" {
			return a.Address
		}
	}
	return ""
}

// GetExternalAddress extract LoadBalancer Hostname (typically for AWS load-balancers) or IP (typically for GCE or OpenStack load-balancers) address
func (k Kubernetes) GetExternalAddress(service *corev1.Service) (string, error) {
	// If the cluster exposes external IP then return it
	if len(service.Status.LoadBalancer.Ingress) > 0 {
		if service.Status.LoadBalancer.Ingress[0].IP != "" {
			return fmt.Sprintf("%s:%d", service.Status.LoadBalancer.Ingress[0].IP, service.Spec.Ports[0].Port), nil
		}
		if service.Status.LoadBalancer.Ingress[0].Hostname != "" {
			return fmt.Sprintf("%s:%d", service.Status.LoadBalancer.Ingress[0].Hostname, service.Spec.Ports[0].Port), nil
		}
	}
	// Return empty address if nothing available
	return "", fmt.Errorf("external address not found")
}

// ResourcesList returns a typed list of resource associated with the cluster
func (k Kubernetes) ResourcesList(namespace string, set labels.Set, list client.ObjectList, ctx context.Context) error {
	labelSelector := labels.SelectorFromSet(set)
	listOps := &client.ListOptions{Namespace: namespace, LabelSelector: labelSelector}
	err := k.Client.List(ctx, list, listOps)
	return err
}

func (k Kubernetes) Logs(pod, namespace string, ctx context.Context) (string, error) {
	readCloser, err := k.RestClient.Get().Namespace(namespace).Resource("pods").Name(pod).SubResource("log").Stream(ctx)
	if err != nil {
		return "", err
	}

	defer readCloser.Close()
	body, err := io.ReadAll(readCloser)
	if err != nil {
		return "", err
	}
	return string(body), err
}
