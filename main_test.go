package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/devpopsdotin/secret-lens/internal/app"
	"github.com/devpopsdotin/secret-lens/internal/config"
	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, []app.Options) {
	t.Helper()
	var out bytes.Buffer
	var calls []app.Options

	cmd := newRootCmd(&out, config.Env{Kubectl: "kubectl"}, func(ctx context.Context, opts app.Options) error {
		calls = append(calls, opts)
		return nil
	})
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	return out.String(), calls
}

func TestRootCmd_NoFlagsPrintsUsageAndContinues(t *testing.T) {
	out, calls := execute(t)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--kubeconfig")
	assert.Contains(t, out, "--namespace")
	require.Len(t, calls, 1)
	assert.Equal(t, kubeconfig.DefaultPath(), calls[0].Kubeconfig)
	assert.Empty(t, calls[0].Context)
	assert.Empty(t, calls[0].Namespace)
	assert.Equal(t, "kubectl", calls[0].Kubectl)
}

func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      app.Options
		wantUsage bool
	}{
		{
			name: "context only",
			args: []string{"--context", "prod"},
			want: app.Options{Kubeconfig: kubeconfig.DefaultPath(), Context: "prod", Kubectl: "kubectl"},
		},
		{
			name: "namespace shorthand",
			args: []string{"-n", "apps"},
			want: app.Options{Kubeconfig: kubeconfig.DefaultPath(), Namespace: "apps", Kubectl: "kubectl"},
		},
		{
			name:      "kubeconfig only still prints usage",
			args:      []string{"--kubeconfig", "/tmp/kc"},
			want:      app.Options{Kubeconfig: "/tmp/kc", Kubectl: "kubectl"},
			wantUsage: true,
		},
		{
			name: "everything",
			args: []string{"--kubeconfig", "/tmp/kc", "--context", "dev", "--namespace", "apps", "-i", "--kubectl"},
			want: app.Options{Kubeconfig: "/tmp/kc", Context: "dev", Namespace: "apps", Interactive: true, UseKubectl: true, Kubectl: "kubectl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, calls := execute(t, tt.args...)

			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0])
			if tt.wantUsage {
				assert.Contains(t, out, "Usage:")
			} else {
				assert.NotContains(t, out, "Usage:")
			}
		})
	}
}

func TestRun_MissingKubeconfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	var out bytes.Buffer

	code := run([]string{"--kubeconfig", path, "--namespace", "apps"}, &out, io.Discard)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Kube config file not found: "+path+"\n", out.String())
}

func TestRun_UnknownContextListsAvailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(`apiVersion: v1
kind: Config
current-context: dev
contexts:
- name: dev
  context: {cluster: local, user: admin}
- name: prod
  context: {cluster: local, user: admin}
`), 0600))
	var out bytes.Buffer

	code := run([]string{"--kubeconfig", path, "--context", "qa"}, &out, io.Discard)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Available contexts: [dev prod]")
	assert.Contains(t, out.String(), " - dev\n - prod\n")
}

func TestRun_UnknownFlag(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"--no-such-flag"}, &out, io.Discard)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "unknown flag")
}
