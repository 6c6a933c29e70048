package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/storage"

	"github.com/google/uuid"
)

var ErrNotPDF = errors.New("only .pdf uploads are accepted")

type Service struct {
	repo  Repository
	store storage.Store
	menus menu.Repository
	lang  string

	// extract turns a stored PDF into OCR text; swapped out in tests so
	// they do not shell out to pdftoppm/tesseract.
	extract func(pdfPath, lang string) (string, error)
}

func NewService(repo Repository, store storage.Store, menus menu.Repository, lang string) *Service {
	return &Service{
		repo:    repo,
		store:   store,
		menus:   menus,
		lang:    lang,
		extract: renderAndExtract,
	}
}

// WithExtractor overrides the PDF-to-text step, for tests.
func (s *Service) WithExtractor(fn func(pdfPath, lang string) (string, error)) *Service {
	s.extract = fn
	return s
}

// Enqueue stores the uploaded PDF and queues an ingestion job for the
// worker. The file is retained under a fresh object key.
func (s *Service) Enqueue(ctx context.Context, file io.Reader, filename string) (*Job, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return nil, ErrNotPDF
	}

	key := fmt.Sprintf("menus/%s%s", uuid.New().String(), ext)
	if _, err := s.store.Save(ctx, key, file); err != nil {
		return nil, err
	}

	job := &Job{ObjectKey: key, Filename: filename}
	if err := s.repo.Enqueue(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ProcessOne claims and processes a single pending job. A failed job is
// marked failed and does not block the worker; only repository errors
// propagate.
func (s *Service) ProcessOne(ctx context.Context) error {
	job, err := s.repo.ClaimNext(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	report, err := s.run(ctx, job)
	if err != nil {
		log.Printf("ingestion failed id=%d: %v", job.ID, err)
		return s.repo.MarkFailed(ctx, job.ID, err.Error())
	}

	for _, item := range report.Items {
		err := s.menus.Create(ctx, &menu.Item{
			Name:        item.Name,
			PriceSmall:  item.PriceSmall,
			PriceMedium: item.PriceMedium,
			PriceLarge:  item.PriceLarge,
		})
		if err != nil {
			return s.repo.MarkFailed(ctx, job.ID, err.Error())
		}
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return s.repo.MarkFailed(ctx, job.ID, err.Error())
	}

	log.Printf("ingestion done id=%d accepted=%d rejected=%d",
		job.ID, len(report.Items), len(report.Rejected))

	return s.repo.MarkDone(ctx, job.ID, len(report.Items), string(reportJSON))
}

func (s *Service) run(ctx context.Context, job *Job) (*Report, error) {
	src, err := s.store.Open(ctx, job.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "menu-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	tmp.Close()

	text, err := s.extract(tmp.Name(), s.lang)
	if err != nil {
		return nil, err
	}

	report := ParseLines(text)
	return &report, nil
}

// Run processes jobs until the context is cancelled.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	log.Println("ingestion worker started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("ingestion worker stopped")
			return
		case <-ticker.C:
			if err := s.ProcessOne(ctx); err != nil {
				log.Printf("ingestion error: %v", err)
			}
		}
	}
}

// Latest returns the most recent job and its decoded report (nil report
// when the job has none yet).
func (s *Service) Latest(ctx context.Context) (*Job, *Report, error) {
	job, err := s.repo.Latest(ctx)
	if err != nil || job == nil {
		return nil, nil, err
	}

	if job.ReportJSON == "" {
		return job, nil, nil
	}

	var report Report
	if err := json.Unmarshal([]byte(job.ReportJSON), &report); err != nil {
		return job, nil, nil
	}
	return job, &report, nil
}

// renderAndExtract is the real pipeline: PDF pages to PNG, then tesseract
// over each page.
func renderAndExtract(pdfPath, lang string) (string, error) {
	outDir, err := os.MkdirTemp("", "menu-pages-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(outDir)

	pages, err := RenderPages(pdfPath, outDir)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, page := range pages {
		text, err := ExtractText(page, lang)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
