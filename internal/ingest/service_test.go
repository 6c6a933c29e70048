package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngestService(t *testing.T) (*Service, *InMemoryRepository, *menu.InMemoryRepository) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	repo := NewInMemoryRepository()
	menuRepo := menu.NewInMemoryRepository()

	service := NewService(repo, store, menuRepo, "deu")
	return service, repo, menuRepo
}

func TestEnqueueRejectsNonPDF(t *testing.T) {
	service, _, _ := newTestIngestService(t)

	_, err := service.Enqueue(context.Background(), strings.NewReader("x"), "menu.jpg")
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestEnqueueStoresFileAndJob(t *testing.T) {
	service, repo, _ := newTestIngestService(t)

	job, err := service.Enqueue(context.Background(), strings.NewReader("%PDF-1.4"), "karte.pdf")
	require.NoError(t, err)
	assert.Equal(t, StatusUploaded, job.Status)
	assert.Equal(t, "karte.pdf", job.Filename)
	assert.True(t, strings.HasPrefix(job.ObjectKey, "menus/"))

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, job.ID, latest.ID)
}

func TestProcessOneIngestsAcceptedLines(t *testing.T) {
	service, _, menuRepo := newTestIngestService(t)
	service.WithExtractor(func(_, _ string) (string, error) {
		return "Speisekarte\nPizza Margherita 5,00 7,00 9,00\nGetränke\n", nil
	})

	_, err := service.Enqueue(context.Background(), strings.NewReader("%PDF-1.4"), "karte.pdf")
	require.NoError(t, err)

	require.NoError(t, service.ProcessOne(context.Background()))

	items, err := menuRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza Margherita", items[0].Name)
	assert.Equal(t, "7,00", items[0].PriceMedium)

	job, report, err := service.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, StatusDone, job.Status)
	assert.Equal(t, 1, job.Accepted)
	require.NotNil(t, report)
	assert.Len(t, report.Rejected, 2)
}

func TestProcessOneMarksFailureInsteadOfCrashing(t *testing.T) {
	service, repo, menuRepo := newTestIngestService(t)
	service.WithExtractor(func(_, _ string) (string, error) {
		return "", errors.New("corrupt PDF")
	})

	_, err := service.Enqueue(context.Background(), strings.NewReader("%PDF-1.4"), "kaputt.pdf")
	require.NoError(t, err)

	require.NoError(t, service.ProcessOne(context.Background()))

	job, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, StatusFailed, job.Status)
	require.NotNil(t, job.Error)
	assert.Contains(t, *job.Error, "corrupt PDF")

	items, _ := menuRepo.List(context.Background())
	assert.Empty(t, items)
}

func TestProcessOneNoPendingJobs(t *testing.T) {
	service, _, _ := newTestIngestService(t)
	assert.NoError(t, service.ProcessOne(context.Background()))
}
