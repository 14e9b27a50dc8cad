package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Document is the full journal dump, keyed the same way as the local store.
type Document struct {
	Daily      map[string]domain.DailyRecord    `json:"daily"`
	Toilet     map[string][]domain.ToiletRecord `json:"toilet"`
	Medicine   map[string]domain.MedicineRecord `json:"medicine"`
	Hospital   map[string]domain.HospitalRecord `json:"hospital"`
	LabTest    map[string]domain.LabTestRecord  `json:"labtest"`
	ExportedAt time.Time                        `json:"exportedAt"`
}

// All returns a snapshot of every collection.
func (s *Service) All(_ context.Context) Document {
	return Document{
		Daily:      s.src.Daily.Snapshot(),
		Toilet:     s.src.Toilet.Snapshot(),
		Medicine:   s.src.Medicine.Snapshot(),
		Hospital:   s.src.Hospital.Snapshot(),
		LabTest:    s.src.LabTest.Snapshot(),
		ExportedAt: s.now().UTC(),
	}
}

// AllJSON returns the indented JSON encoding of All.
func (s *Service) AllJSON(ctx context.Context) ([]byte, error) {
	out, err := json.MarshalIndent(s.All(ctx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return out, nil
}
