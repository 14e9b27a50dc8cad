package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// File is a named export artifact.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

// Files returns the full JSON dump and the subject's daily CSV, named after
// the subject's display name and the export date. The CSV carries a BOM.
func (s *Service) Files(ctx context.Context, subject string) ([]File, error) {
	csv, err := s.DailyCSV(ctx, subject)
	if err != nil {
		return nil, err
	}
	doc, err := s.AllJSON(ctx)
	if err != nil {
		return nil, err
	}

	name := domain.SubjectName(subject)
	stamp := s.now().Format(domain.DateLayout)

	return []File{
		{
			Name:        fmt.Sprintf("%s_all_%s.json", name, stamp),
			ContentType: ContentTypeJSON,
			Body:        doc,
		},
		{
			Name:        fmt.Sprintf("%s_daily_%s.csv", name, stamp),
			ContentType: ContentTypeCSV,
			Body:        append([]byte(BOM), csv...),
		},
	}, nil
}

// ErrArchiveDisabled is returned by Archive when no uploader is configured.
var ErrArchiveDisabled = errors.New("archive not configured")

// Archive uploads the export files and returns their names.
func (s *Service) Archive(ctx context.Context, subject string) ([]string, error) {
	if s.uploader == nil {
		return nil, ErrArchiveDisabled
	}

	files, err := s.Files(ctx, subject)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for _, f := range files {
		if err := s.uploader.Upload(ctx, f.Name, f.ContentType, f.Body); err != nil {
			return keys, fmt.Errorf("archive %s: %w", f.Name, err)
		}
		keys = append(keys, f.Name)
	}

	s.log.InfoContext(ctx, "export archived",
		slog.String("cat", subject),
		slog.Int("files", len(keys)),
	)

	return keys, nil
}
