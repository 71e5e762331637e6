package k8s

import (
	"fmt"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

// ContextError reports a kubeconfig context that could not be turned into
// working credentials. Available lists every context found in the file.
type ContextError struct {
	Context   string
	Available []string
	Err       error
}

func (e *ContextError) Error() string {
	return e.Err.Error()
}

func (e *ContextError) Unwrap() error { return e.Err }

// ListError reports a failed secret listing
type ListError struct {
	Namespace string
	Err       error
}

func (e *ListError) Error() string {
	return e.Err.Error()
}

func (e *ListError) Unwrap() error { return e.Err }

// HandleK8sError provides user-friendly error messages for Kubernetes API errors.
// The original error stays reachable through errors.Is / errors.As.
func HandleK8sError(err error, resource, scope string) error {
	if err == nil {
		return nil
	}

	if k8serrors.IsNotFound(err) {
		return fmt.Errorf("%s in %s not found: %w", resource, scope, err)
	}

	if k8serrors.IsForbidden(err) {
		return fmt.Errorf("permission denied listing %s in %s: %w", resource, scope, err)
	}

	if k8serrors.IsUnauthorized(err) {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if k8serrors.IsTimeout(err) || k8serrors.IsServerTimeout(err) {
		return fmt.Errorf("kubernetes API timeout: %w", err)
	}

	if k8serrors.IsTooManyRequests(err) {
		return fmt.Errorf("kubernetes API is throttling requests: %w", err)
	}

	// Return original error if no specific handling
	return err
}
