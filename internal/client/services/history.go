package services

import (
	"context"
	"fmt"

	"github.com/arfidakai/Rapihin.ai/internal/client/api"
	"github.com/arfidakai/Rapihin.ai/internal/client/models"
)

// HistoryService reads the user's past formatting records and the template
// metadata. It does not enforce authentication itself; an unauthenticated
// call surfaces common.ErrUnauthorized from the server and the caller
// redirects to login.
type HistoryService interface {
	// Fetch returns the records exactly as the server ordered them.
	// Re-invoke to refresh.
	Fetch(ctx context.Context) ([]models.HistoryRecord, error)

	Templates(ctx context.Context) (*models.TemplateInfo, error)
}

type historyService struct {
	client api.Client
}

func NewHistoryService(client api.Client) HistoryService {
	return &historyService{client: client}
}

func (s *historyService) Fetch(ctx context.Context) ([]models.HistoryRecord, error) {
	records, err := s.client.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return records, nil
}

func (s *historyService) Templates(ctx context.Context) (*models.TemplateInfo, error) {
	info, err := s.client.Templates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch templates: %w", err)
	}
	return info, nil
}
