package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/devpopsdotin/secret-lens/internal/k8s"
	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
)

// ContextHint follows every context resolution failure
const ContextHint = "Please ensure that the kubeconfig file is correctly set up and contains the necessary context information."

// Report prints the diagnostic for err and returns the process exit code:
// 0 for nil, 1 for every failure
func Report(out io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var (
		notFound *kubeconfig.NotFoundError
		readErr  *kubeconfig.ReadError
		parseErr *kubeconfig.ParseError
		ctxErr   *k8s.ContextError
		listErr  *k8s.ListError
	)

	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(out, "Kube config file not found: %s\n", notFound.Path)
	case errors.As(err, &readErr):
		fmt.Fprintf(out, "Error reading kube config file %s: %v\n", readErr.Path, readErr.Err)
	case errors.As(err, &parseErr):
		fmt.Fprintf(out, "Error parsing kube config file: %v\n", parseErr.Err)
	case errors.As(err, &ctxErr):
		fmt.Fprintf(out, "Failed to load kube config: %v\n", ctxErr.Err)
		fmt.Fprintln(out, ContextHint)
		fmt.Fprintln(out, "Available contexts in kubeconfig file:")
		for _, name := range ctxErr.Available {
			fmt.Fprintf(out, " - %s\n", name)
		}
	case errors.As(err, &listErr):
		fmt.Fprintf(out, "Failed to list secrets: %v\n", listErr.Err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}

	return 1
}
