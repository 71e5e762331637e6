// Package app runs the secret dump pipeline: resolve credentials, list
// secrets once, then decode and print (or browse) everything not excluded.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/devpopsdotin/secret-lens/internal/k8s"
	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
	"github.com/devpopsdotin/secret-lens/internal/secrets"
	"github.com/devpopsdotin/secret-lens/internal/ui"
)

// Options are the resolved command-line inputs
type Options struct {
	Kubeconfig  string
	Context     string
	Namespace   string
	Interactive bool
	UseKubectl  bool
	Kubectl     string // kubectl binary used with UseKubectl
}

// ClientFactory builds the API handle for a loaded kubeconfig
type ClientFactory func(doc *kubeconfig.Document, opts Options) (k8s.Client, error)

// Browser shows decoded records interactively
type Browser func(ctx context.Context, records []secrets.Decoded, title string) error

// App wires the pipeline stages to an output writer
type App struct {
	out     io.Writer
	log     *slog.Logger
	printer *secrets.Printer

	NewClient ClientFactory
	Browse    Browser
}

// New creates an App printing to out. Diagnostics and secrets share out;
// log only receives structured operational records.
func New(out io.Writer, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		out:       out,
		log:       log,
		printer:   secrets.NewPrinter(out),
		NewClient: DefaultClientFactory,
		Browse:    ui.Run,
	}
}

// DefaultClientFactory returns a client-go handle, or a kubectl-backed one
// when opts.UseKubectl is set
func DefaultClientFactory(doc *kubeconfig.Document, opts Options) (k8s.Client, error) {
	if opts.UseKubectl {
		c, err := k8s.NewKubectlClient(opts.Kubectl, doc, opts.Context)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	c, err := k8s.NewClientGoClient(doc, opts.Context)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes the pipeline. Every fatal failure is returned, never
// printed here; see Report.
func (a *App) Run(ctx context.Context, opts Options) error {
	client, doc, err := a.resolve(opts)
	if err != nil {
		return err
	}

	list, err := a.enumerate(ctx, client, opts.Namespace)
	if err != nil {
		return err
	}

	if opts.Interactive {
		return a.browse(ctx, list, doc, opts)
	}
	return a.print(list)
}

// resolve loads the kubeconfig, prints the mandatory diagnostics and builds
// the API handle
func (a *App) resolve(opts Options) (k8s.Client, *kubeconfig.Document, error) {
	doc, err := kubeconfig.Load(opts.Kubeconfig)
	if err != nil {
		return nil, nil, err
	}

	fmt.Fprintln(a.out, "Kubeconfig loaded successfully.")
	fmt.Fprintf(a.out, "Current context: %s\n", doc.CurrentContextOrNone())
	fmt.Fprintf(a.out, "Available contexts: %v\n", doc.ContextNames())
	a.log.Debug("kubeconfig loaded", "path", doc.Path, "contexts", len(doc.Contexts), "override", opts.Context)

	client, err := a.NewClient(doc, opts)
	if err != nil {
		return nil, nil, err
	}
	return client, doc, nil
}

// enumerate performs the single list call and parses the result
func (a *App) enumerate(ctx context.Context, client k8s.Client, namespace string) ([]secrets.Secret, error) {
	raw, err := client.ListSecrets(ctx, namespace)
	if err != nil {
		return nil, err
	}

	list, err := secrets.ParseList(raw)
	if err != nil {
		return nil, &k8s.ListError{Namespace: namespace, Err: err}
	}

	a.log.Debug("secrets enumerated", "namespace", namespace, "count", len(list))
	return list, nil
}

// print decodes and prints every non-excluded secret in API order
func (a *App) print(list []secrets.Secret) error {
	var printed, excluded, failed int

	for _, s := range list {
		if secrets.IsExcluded(s.Name) {
			excluded++
			a.log.Debug("skipping helm secret", "namespace", s.Namespace, "name", s.Name)
			continue
		}

		d := secrets.Decode(s)
		for _, f := range d.Failures() {
			failed++
			a.log.Debug("failed to decode secret field", "namespace", d.Namespace, "name", d.Name, "key", f.Key, "error", f.Err)
			if err := a.printer.PrintDecodeFailure(f); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}

		if err := a.printer.Print(d); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		printed++
	}

	a.log.Info("secrets printed", "listed", len(list), "printed", printed, "excluded", excluded, "decode_failures", failed)
	return nil
}

// browse decodes every non-excluded secret and hands them to the browser
func (a *App) browse(ctx context.Context, list []secrets.Secret, doc *kubeconfig.Document, opts Options) error {
	records := make([]secrets.Decoded, 0, len(list))
	for _, s := range list {
		if secrets.IsExcluded(s.Name) {
			continue
		}
		d := secrets.Decode(s)
		for _, f := range d.Failures() {
			a.log.Debug("failed to decode secret field", "namespace", d.Namespace, "name", d.Name, "key", f.Key, "error", f.Err)
		}
		records = append(records, d)
	}

	if err := a.Browse(ctx, records, title(doc, opts)); err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}
	return nil
}

// title names the context and scope being browsed
func title(doc *kubeconfig.Document, opts Options) string {
	ctxName := opts.Context
	if ctxName == "" {
		ctxName = doc.CurrentContextOrNone()
	}
	scope := opts.Namespace
	if scope == "" {
		scope = "all namespaces"
	}
	return ctxName + " / " + scope
}
