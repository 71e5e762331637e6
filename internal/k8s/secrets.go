package k8s

import (
	"context"
	"log/slog"
)

// ListSecrets fetches secrets as JSON (kubectl get secrets -o json)
func (c *KubectlClient) ListSecrets(ctx context.Context, namespace string) ([]byte, error) {
	slog.Debug("listing secrets via kubectl", "namespace", scope(namespace), "context", c.Context)

	data, err := c.runCmd(ctx, c.listSecretsArgs(namespace)...)
	if err != nil {
		slog.Debug("kubectl failed to list secrets", "namespace", scope(namespace), "error", err)
		return nil, &ListError{Namespace: namespace, Err: err}
	}

	slog.Debug("secrets listed via kubectl", "namespace", scope(namespace), "bytes", len(data))
	return data, nil
}

func (c *KubectlClient) listSecretsArgs(namespace string) []string {
	args := []string{"get", "secrets", "-o", "json"}
	if namespace != "" {
		args = append(args, "-n", namespace)
	} else {
		args = append(args, "--all-namespaces")
	}
	return append(args, c.globalArgs()...)
}

// scope renders a namespace for logs and messages
func scope(namespace string) string {
	if namespace == "" {
		return "all namespaces"
	}
	return namespace
}
