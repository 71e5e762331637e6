package k8s

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
)

// DefaultKubectl is the kubectl binary looked up on PATH
const DefaultKubectl = "kubectl"

// Client is the interface for Kubernetes operations
type Client interface {
	// ListSecrets returns a JSON encoded SecretList snapshot. Data values are
	// base64 encoded exactly as served by the API. An empty namespace lists
	// secrets across all namespaces.
	ListSecrets(ctx context.Context, namespace string) ([]byte, error)
}

// KubectlClient implements Client using kubectl CLI
type KubectlClient struct {
	Binary     string // kubectl executable
	Kubeconfig string // kubeconfig file passed with --kubeconfig
	Context    string // Kubernetes context, empty for current-context
}

// NewKubectlClient creates a kubectl-based client after resolving the
// context the same way NewClientGoClient does
func NewKubectlClient(binary string, doc *kubeconfig.Document, kubeContext string) (*KubectlClient, error) {
	if _, err := restConfig(doc, kubeContext); err != nil {
		return nil, err
	}

	if binary == "" {
		binary = DefaultKubectl
	}

	return &KubectlClient{
		Binary:     binary,
		Kubeconfig: doc.Path,
		Context:    kubeContext,
	}, nil
}

// runCmd executes kubectl and returns stdout. Stderr is folded into the error.
func (c *KubectlClient) runCmd(ctx context.Context, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// globalArgs returns the connection flags shared by every kubectl call
func (c *KubectlClient) globalArgs() []string {
	var args []string
	if c.Kubeconfig != "" {
		args = append(args, "--kubeconfig", c.Kubeconfig)
	}
	if c.Context != "" {
		args = append(args, "--context", c.Context)
	}
	return args
}
