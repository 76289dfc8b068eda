package tui

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	greeting string
	reply    *domain.ChatReply
	err      error
	ended    bool
}

func (m *mockChatService) StartSession(_ context.Context) (string, error) {
	return m.greeting, m.err
}

func (m *mockChatService) Handle(_ context.Context, _ string) (*domain.ChatReply, error) {
	return m.reply, m.err
}

func (m *mockChatService) EndSession(_ context.Context) error {
	m.ended = true
	return nil
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	docs     []domain.DocumentInfo
	report   *driving.LoadReport
	err      error
	unloaded []string
}

func (m *mockIndexService) LoadFile(_ context.Context, _ string) (*driving.LoadReport, error) {
	return m.report, m.err
}

func (m *mockIndexService) LoadFolder(_ context.Context, _ string) ([]driving.LoadReport, error) {
	if m.report == nil {
		return nil, m.err
	}
	return []driving.LoadReport{*m.report}, m.err
}

func (m *mockIndexService) LoadText(_ context.Context, _, _ string) (int, error) {
	return 0, m.err
}

func (m *mockIndexService) Content(_ context.Context, _ string) (string, error) {
	return "", m.err
}

func (m *mockIndexService) Unload(_ context.Context, id string) error {
	m.unloaded = append(m.unloaded, id)
	return m.err
}

func (m *mockIndexService) Clear(_ context.Context) error {
	return m.err
}

func (m *mockIndexService) List(_ context.Context) ([]domain.DocumentInfo, error) {
	return m.docs, m.err
}

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	answers []domain.Answer
	err     error
}

func (m *mockQueryService) Ask(_ context.Context, _ string, _ int) ([]domain.Answer, error) {
	return m.answers, m.err
}

func testPorts() *Ports {
	return &Ports{
		Chat:  &mockChatService{greeting: "Hi! Ask me about your docs, or say 'help'."},
		Index: &mockIndexService{},
		Query: &mockQueryService{},
	}
}
