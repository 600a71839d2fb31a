package provision

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/pointer"

	"github.com/jboss-intersmash/intersmash-tests/pkg/kubernetes"
)

const (
	defaultPostgresImage = "quay.io/sclorg/postgresql-15-c9s:latest"

	// PostgresPort is the port the database service listens on
	PostgresPort = 5432

	// Keys of the credentials secret, shared with the services that connect
	// to the database
	PostgresUserKey     = "database-user"
	PostgresPasswordKey = "database-password"
)

// PostgresProvisioner deploys an ephemeral PostgreSQL instance backing
// another service. No operator is involved, the provisioner manages a plain
// Deployment together with its Service and credentials Secret.
type PostgresProvisioner struct {
	Kubernetes *kubernetes.Kubernetes
	Namespace  string
	DBName     string
	Database   string
	Username   string
	Password   string
	Image      string
	Timeout    time.Duration
}

var _ Provisioner = (*PostgresProvisioner)(nil)

func (p *PostgresProvisioner) Name() string {
	return p.DBName
}

// ServiceName is the DNS name other services reach the database under
func (p *PostgresProvisioner) ServiceName() string {
	return p.DBName + "-service"
}

// SecretName holds the database credentials under PostgresUserKey and
// PostgresPasswordKey
func (p *PostgresProvisioner) SecretName() string {
	return p.DBName + "-credentials"
}

func (p *PostgresProvisioner) timeout() time.Duration {
	if p.Timeout == 0 {
		return DefaultDeployTimeout
	}
	return p.Timeout
}

func (p *PostgresProvisioner) image() string {
	if p.Image == "" {
		return defaultPostgresImage
	}
	return p.Image
}

func (p *PostgresProvisioner) selectorLabels() map[string]string {
	return map[string]string{"app": p.DBName}
}

func (p *PostgresProvisioner) Deploy(ctx context.Context) error {
	log.Info("Deploying database", "name", p.DBName, "namespace", p.Namespace)

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:   p.SecretName(),
			Labels: p.selectorLabels(),
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			PostgresUserKey:     p.Username,
			PostgresPasswordKey: p.Password,
		},
	}
	if err := createSecrets(ctx, p.Kubernetes, p.Namespace, []*corev1.Secret{secret}); err != nil {
		return err
	}

	if err := createOrFail(ctx, p.Kubernetes, p.deployment(), p.Namespace); err != nil {
		return err
	}
	if err := createOrFail(ctx, p.Kubernetes, p.service(), p.Namespace); err != nil {
		return err
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, p.selectorLabels(), 1, p.timeout())
}

func (p *PostgresProvisioner) Undeploy(ctx context.Context) error {
	log.Info("Undeploying database", "name", p.DBName, "namespace", p.Namespace)
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, p.service()); err != nil {
		return err
	}
	if err := deleteIgnoreNotFound(ctx, p.Kubernetes, p.deployment()); err != nil {
		return err
	}
	secret := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: p.SecretName(), Namespace: p.Namespace}}
	return deleteIgnoreNotFound(ctx, p.Kubernetes, secret)
}

func (p *PostgresProvisioner) Scale(ctx context.Context, replicas int32, waitForReady bool) error {
	deployment := &appsv1.Deployment{}
	key := types.NamespacedName{Namespace: p.Namespace, Name: p.DBName}
	if err := p.Kubernetes.Client.Get(ctx, key, deployment); err != nil {
		return err
	}
	if err := updateWithRetry(ctx, p.Kubernetes, deployment, func() {
		deployment.Spec.Replicas = &replicas
	}); err != nil {
		return err
	}
	if !waitForReady {
		return nil
	}
	return waitForPods(ctx, p.Kubernetes, p.Namespace, p.selectorLabels(), int(replicas), p.timeout())
}

func (p *PostgresProvisioner) Pods(ctx context.Context) ([]corev1.Pod, error) {
	return podsBySelector(ctx, p.Kubernetes, p.Namespace, p.selectorLabels())
}

// URL returns the in-cluster connection endpoint, the database is not exposed
// outside the cluster
func (p *PostgresProvisioner) URL(ctx context.Context) (string, error) {
	return fmt.Sprintf("%s:%d", p.ServiceName(), PostgresPort), nil
}

func (p *PostgresProvisioner) deployment() *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      p.DBName,
			Namespace: p.Namespace,
			Labels:    p.selectorLabels(),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: pointer.Int32(1),
			Selector: &metav1.LabelSelector{MatchLabels: p.selectorLabels()},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: p.selectorLabels()},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{
						Name:  "postgresql",
						Image: p.image(),
						Ports: []corev1.ContainerPort{{ContainerPort: PostgresPort}},
						Env: []corev1.EnvVar{
							{Name: "POSTGRESQL_DATABASE", Value: p.Database},
							{Name: "POSTGRESQL_USER", ValueFrom: secretEnv(p.SecretName(), PostgresUserKey)},
							{Name: "POSTGRESQL_PASSWORD", ValueFrom: secretEnv(p.SecretName(), PostgresPasswordKey)},
						},
						ReadinessProbe: &corev1.Probe{
							ProbeHandler: corev1.ProbeHandler{
								Exec: &corev1.ExecAction{
									Command: []string{"pg_isready", "-h", "127.0.0.1"},
								},
							},
							InitialDelaySeconds: 5,
							PeriodSeconds:       10,
						},
					}},
				},
			},
		},
	}
}

func (p *PostgresProvisioner) service() *corev1.Service {
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      p.ServiceName(),
			Namespace: p.Namespace,
			Labels:    p.selectorLabels(),
		},
		Spec: corev1.ServiceSpec{
			Selector: p.selectorLabels(),
			Ports: []corev1.ServicePort{{
				Name: "postgresql",
				Port: PostgresPort,
			}},
		},
	}
}

func secretEnv(secretName, key string) *corev1.EnvVarSource {
	return &corev1.EnvVarSource{
		SecretKeyRef: &corev1.SecretKeySelector{
			LocalObjectReference: corev1.LocalObjectReference{Name: secretName},
			Key:                  key,
		},
	}
}
