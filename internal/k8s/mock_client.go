package k8s

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of the Client interface for testing
type MockClient struct {
	ListSecretsFunc func(ctx context.Context, namespace string) ([]byte, error)

	// Calls records the namespace of every ListSecrets call
	Calls []string
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) ListSecrets(ctx context.Context, namespace string) ([]byte, error) {
	m.Calls = append(m.Calls, namespace)
	if m.ListSecretsFunc != nil {
		return m.ListSecretsFunc(ctx, namespace)
	}
	return nil, fmt.Errorf("ListSecretsFunc not implemented")
}
