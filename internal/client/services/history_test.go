package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/common"
)

func TestHistory_Fetch_PreservesOrder(t *testing.T) {
	client := newFakeClient()
	client.HistoryRet = []models.HistoryRecord{
		{ID: "3", OriginalFilename: "c.docx"},
		{ID: "1", OriginalFilename: "a.docx"},
		{ID: "2", OriginalFilename: "b.docx"},
	}

	s := NewHistoryService(client)
	records, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "3", records[0].ID)
	assert.Equal(t, "1", records[1].ID)
	assert.Equal(t, "2", records[2].ID)
}

func TestHistory_Fetch_Unauthorized(t *testing.T) {
	client := newFakeClient()
	client.HistoryErr = common.ErrUnauthorized

	s := NewHistoryService(client)
	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestHistory_Templates(t *testing.T) {
	client := newFakeClient()
	client.TemplatesRet = &models.TemplateInfo{
		DocumentTypes: []string{"Thesis"},
		Universities:  []models.UniversityTemplate{{Name: "UGM", Description: "Universitas Gadjah Mada template"}},
	}

	s := NewHistoryService(client)
	info, err := s.Templates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Thesis"}, info.DocumentTypes)
	require.Len(t, info.Universities, 1)
	assert.Equal(t, "UGM", info.Universities[0].Name)
}
