package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// ClientGoClient implements Client interface using client-go
type ClientGoClient struct {
	clientset kubernetes.Interface
	context   string // kubeconfig context name
}

// NewClientGoClient creates a client-go based client from the kubeconfig
// document, optionally overriding its current-context
func NewClientGoClient(doc *kubeconfig.Document, kubeContext string) (*ClientGoClient, error) {
	config, err := restConfig(doc, kubeContext)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, &ContextError{Context: kubeContext, Available: doc.ContextNames(), Err: err}
	}

	return NewClientGoClientForClientset(clientset, kubeContext), nil
}

// NewClientGoClientForClientset wraps an existing clientset
func NewClientGoClientForClientset(clientset kubernetes.Interface, kubeContext string) *ClientGoClient {
	return &ClientGoClient{
		clientset: clientset,
		context:   kubeContext,
	}
}

// restConfig resolves credentials for kubeContext from the document's file.
// Every failure is reported as a *ContextError.
func restConfig(doc *kubeconfig.Document, kubeContext string) (*rest.Config, error) {
	if kubeContext != "" && !doc.HasContext(kubeContext) {
		return nil, &ContextError{
			Context:   kubeContext,
			Available: doc.ContextNames(),
			Err:       fmt.Errorf("context %q does not exist", kubeContext),
		}
	}

	if kubeContext == "" && doc.CurrentContext == "" {
		return nil, &ContextError{
			Available: doc.ContextNames(),
			Err:       fmt.Errorf("current-context is not set in %s and no --context was given", doc.Path),
		}
	}

	// Load config with specific context
	configLoadingRules := &clientcmd.ClientConfigLoadingRules{
		ExplicitPath: doc.Path,
	}
	configOverrides := &clientcmd.ConfigOverrides{}
	if kubeContext != "" {
		configOverrides.CurrentContext = kubeContext
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		configLoadingRules,
		configOverrides,
	).ClientConfig()
	if err != nil {
		return nil, &ContextError{Context: kubeContext, Available: doc.ContextNames(), Err: err}
	}

	return config, nil
}

// ListSecrets lists secrets in a namespace, or in all namespaces when empty.
// The request carries no Limit, so the API server answers with the full set
// in one response.
func (c *ClientGoClient) ListSecrets(ctx context.Context, namespace string) ([]byte, error) {
	slog.Debug("listing secrets", "namespace", scope(namespace), "context", c.context)

	secrets, err := c.clientset.CoreV1().Secrets(namespace).List(
		ctx,
		metav1.ListOptions{
			Watch: false,
		},
	)
	if err != nil {
		slog.Debug("failed to list secrets", "namespace", scope(namespace), "error", err)
		return nil, &ListError{Namespace: namespace, Err: HandleK8sError(err, "secrets", scope(namespace))}
	}

	// Marshal to JSON to match interface contract; []byte data is base64 encoded
	data, err := json.Marshal(secrets)
	if err != nil {
		slog.Debug("failed to marshal secrets", "namespace", scope(namespace), "error", err)
		return nil, &ListError{Namespace: namespace, Err: err}
	}

	slog.Debug("secrets listed", "namespace", scope(namespace), "count", len(secrets.Items), "bytes", len(data))
	return data, nil
}
