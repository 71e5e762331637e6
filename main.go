package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/devpopsdotin/secret-lens/internal/app"
	"github.com/devpopsdotin/secret-lens/internal/config"
	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
	"github.com/devpopsdotin/secret-lens/internal/logger"
	"github.com/spf13/cobra"
)

const longDescription = `Extract all Kubernetes secrets and print them as plain text.

Secrets whose name contains "helm" (Helm release metadata) are skipped.`

const examples = `  secret-lens
  secret-lens --kubeconfig /path/to/kubeconfig
  secret-lens --context my-context
  secret-lens --namespace my-namespace
  secret-lens --kubeconfig /path/to/kubeconfig --context my-context --namespace my-namespace`

// runFunc executes the pipeline once flags are parsed
type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(out io.Writer, env config.Env, run runFunc) *cobra.Command {
	opts := app.Options{
		Kubeconfig: kubeconfig.DefaultPath(),
		Kubectl:    env.Kubectl,
	}

	cmd := &cobra.Command{
		Use:           "secret-lens",
		Short:         "Extract all K8s secrets and print as plain text",
		Long:          longDescription,
		Example:       examples,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Informational only: execution continues after the usage block
			if opts.Context == "" && opts.Namespace == "" {
				fmt.Fprintln(out, cmd.UsageString())
			}
			return run(cmd.Context(), opts)
		},
	}
	cmd.SetOut(out)

	flags := cmd.Flags()
	flags.StringVar(&opts.Kubeconfig, "kubeconfig", opts.Kubeconfig, "Path to the kubeconfig file")
	flags.StringVar(&opts.Context, "context", "", "Kubernetes context to use (default: current context)")
	flags.StringVarP(&opts.Namespace, "namespace", "n", "", "Kubernetes namespace to get secrets from (default: all namespaces)")
	flags.BoolVarP(&opts.Interactive, "interactive", "i", false, "Browse decoded secrets in a terminal UI instead of printing")
	flags.BoolVar(&opts.UseKubectl, "kubectl", false, "List secrets through the kubectl binary instead of client-go")

	return cmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the single exit point: every fatal error becomes exit status 1
func run(args []string, stdout, stderr io.Writer) int {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	log := logger.Init(stderr, env.LogLevel, env.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(stdout, log)
	cmd := newRootCmd(stdout, env, a.Run)
	cmd.SetArgs(args)

	return app.Report(stdout, cmd.ExecuteContext(ctx))
}
