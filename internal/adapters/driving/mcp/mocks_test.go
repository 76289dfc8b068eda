package mcp

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	report  *driving.LoadReport
	docs    []domain.DocumentInfo
	content string
	err     error

	loadedPaths []string
}

func (m *mockIndexService) LoadFile(_ context.Context, path string) (*driving.LoadReport, error) {
	m.loadedPaths = append(m.loadedPaths, path)
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
	return m.content, m.err
}

func (m *mockIndexService) Unload(_ context.Context, _ string) error {
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

	lastTopK int
}

func (m *mockQueryService) Ask(_ context.Context, _ string, topK int) ([]domain.Answer, error) {
	m.lastTopK = topK
	return m.answers, m.err
}

func testPorts() *Ports {
	return &Ports{
		Index: &mockIndexService{},
		Query: &mockQueryService{},
	}
}
