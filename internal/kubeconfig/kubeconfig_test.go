package kubeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoContexts = `apiVersion: v1
kind: Config
current-context: dev
clusters:
- name: dev-cluster
  cluster:
    server: https://dev.example.com
- name: prod-cluster
  cluster:
    server: https://prod.example.com
users:
- name: dev-user
  user:
    token: abc
contexts:
- name: dev
  context:
    cluster: dev-cluster
    user: dev-user
    namespace: apps
- name: prod
  context:
    cluster: prod-cluster
    user: dev-user
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, twoContexts)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "dev", doc.CurrentContextOrNone())
	assert.Equal(t, []string{"dev", "prod"}, doc.ContextNames())
	assert.Len(t, doc.Clusters, 2)
	assert.Equal(t, "https://prod.example.com", doc.Clusters[1].Cluster.Server)

	ctx, ok := doc.Context("dev")
	require.True(t, ok)
	assert.Equal(t, "dev-cluster", ctx.Context.Cluster)
	assert.Equal(t, "apps", ctx.Context.Namespace)
	assert.False(t, doc.HasContext("staging"))
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), path)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, path, nf.Path)
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())

	var re *ReadError
	assert.True(t, errors.As(err, &re))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestLoad_ParseError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated flow", "contexts: [\n"},
		{"nested mapping on one line", "current-context: a: b\n"},
		{"wrong shape", "contexts: 12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, NoCurrentContext, doc.CurrentContextOrNone())
	assert.Empty(t, doc.ContextNames())
}

func TestDefaultPath(t *testing.T) {
	assert.True(t, strings.HasSuffix(DefaultPath(), filepath.Join(".kube", "config")))
}
