package llm

import (
	"context"
	"fmt"

	"github.com/Jodansky/mindtext-journal/internal/domain"
)

// MockClient is a canned completion client for local mode and tests. It
// never calls out anywhere.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GenerateReply(_ context.Context, prompt string, _ []domain.ChatTurn) (string, error) {
	return fmt.Sprintf("I hear you. You said %q. Tell me a little more about how that feels.", prompt), nil
}

func (m *MockClient) Summarize(_ context.Context, entryText string) (string, error) {
	return fmt.Sprintf("You took a moment to write %d characters about your day. Coming back to these words later will show you how far you have moved.", len(entryText)), nil
}
