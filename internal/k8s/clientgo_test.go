package k8s

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devpopsdotin/secret-lens/internal/kubeconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: dev
clusters:
- name: dev-cluster
  cluster:
    server: https://127.0.0.1:6443
users:
- name: dev-user
  user:
    token: not-a-real-token
contexts:
- name: dev
  context:
    cluster: dev-cluster
    user: dev-user
- name: broken
  context:
    cluster: missing-cluster
    user: dev-user
`

func loadTestDoc(t *testing.T, content string) *kubeconfig.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	doc, err := kubeconfig.Load(path)
	require.NoError(t, err)
	return doc
}

func newSecret(namespace, name string, data map[string][]byte) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name},
		Data:       data,
	}
}

func decodeList(t *testing.T, raw []byte) []string {
	t.Helper()
	var list corev1.SecretList
	require.NoError(t, json.Unmarshal(raw, &list))
	var ids []string
	for _, s := range list.Items {
		ids = append(ids, s.Namespace+"/"+s.Name)
	}
	return ids
}

func TestNewClientGoClient(t *testing.T) {
	doc := loadTestDoc(t, testKubeconfig)

	t.Run("CurrentContext", func(t *testing.T) {
		client, err := NewClientGoClient(doc, "")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("ExplicitContext", func(t *testing.T) {
		client, err := NewClientGoClient(doc, "dev")
		require.NoError(t, err)
		assert.Equal(t, "dev", client.context)
	})

	t.Run("UnknownContext", func(t *testing.T) {
		_, err := NewClientGoClient(doc, "staging")

		var ctxErr *ContextError
		require.True(t, errors.As(err, &ctxErr))
		assert.Equal(t, "staging", ctxErr.Context)
		assert.Equal(t, []string{"dev", "broken"}, ctxErr.Available)
		assert.Contains(t, err.Error(), "staging")
	})

	t.Run("ContextWithMissingCluster", func(t *testing.T) {
		_, err := NewClientGoClient(doc, "broken")

		var ctxErr *ContextError
		require.True(t, errors.As(err, &ctxErr))
		assert.Equal(t, []string{"dev", "broken"}, ctxErr.Available)
	})
}

func TestNewClientGoClient_NoCurrentContext(t *testing.T) {
	doc := loadTestDoc(t, "apiVersion: v1\nkind: Config\n")

	_, err := NewClientGoClient(doc, "")

	var ctxErr *ContextError
	require.True(t, errors.As(err, &ctxErr))
	assert.Empty(t, ctxErr.Available)
}

func TestClientGoClient_ListSecrets(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		newSecret("apps", "db-credentials", map[string][]byte{"password": []byte("hunter2")}),
		newSecret("apps", "api-token", nil),
		newSecret("kube-system", "bootstrap", map[string][]byte{"token": []byte("abc")}),
	)
	client := NewClientGoClientForClientset(clientset, "dev")
	ctx := context.Background()

	t.Run("Namespaced", func(t *testing.T) {
		raw, err := client.ListSecrets(ctx, "apps")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"apps/db-credentials", "apps/api-token"}, decodeList(t, raw))
	})

	t.Run("AllNamespaces", func(t *testing.T) {
		raw, err := client.ListSecrets(ctx, "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"apps/db-credentials", "apps/api-token", "kube-system/bootstrap"}, decodeList(t, raw))
	})

	t.Run("DataStaysBase64OnTheWire", func(t *testing.T) {
		raw, err := client.ListSecrets(ctx, "kube-system")
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"token":"YWJj"`)
	})

	t.Run("SnapshotOnly", func(t *testing.T) {
		_, err := client.ListSecrets(ctx, "apps")
		require.NoError(t, err)

		actions := clientset.Actions()
		require.NotEmpty(t, actions)
		last := actions[len(actions)-1]
		assert.True(t, last.Matches("list", "secrets"))
		for _, a := range actions {
			assert.False(t, a.Matches("watch", "secrets"))
		}
	})
}

func TestClientGoClient_ListSecrets_Forbidden(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	clientset.PrependReactor("list", "secrets", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, k8serrors.NewForbidden(schema.GroupResource{Resource: "secrets"}, "", errors.New("rbac says no"))
	})
	client := NewClientGoClientForClientset(clientset, "")

	raw, err := client.ListSecrets(context.Background(), "")
	assert.Nil(t, raw)

	var listErr *ListError
	require.True(t, errors.As(err, &listErr))
	assert.Empty(t, listErr.Namespace)
	assert.True(t, k8serrors.IsForbidden(err))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestClientGoClient_ListSecrets_FailureNotLoggedAtWarn(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))

	clientset := fake.NewSimpleClientset()
	clientset.PrependReactor("list", "secrets", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, k8serrors.NewUnauthorized("token expired")
	})

	_, err := NewClientGoClientForClientset(clientset, "dev").ListSecrets(context.Background(), "apps")
	require.Error(t, err)
	assert.Empty(t, logs.String())
}

// TestClientGoClient_Integration lists secrets against a real cluster
// Run with: go test -v ./internal/k8s -short=false
func TestClientGoClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	doc, err := kubeconfig.Load(kubeconfig.DefaultPath())
	if err != nil {
		t.Skipf("Skipping integration test: %v", err)
	}

	client, err := NewClientGoClient(doc, "")
	if err != nil {
		t.Skipf("Skipping integration test, no usable context: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data, err := client.ListSecrets(ctx, "default")
	if err != nil {
		t.Logf("ListSecrets against current context: %v", err)
		return
	}
	t.Logf("Retrieved secret list data: %d bytes", len(data))
}
