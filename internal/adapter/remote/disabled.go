package remote

import (
	"context"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Disabled stands in for the endpoint when mirroring is switched off:
// every read is unavailable and every write is dropped.
type Disabled struct{}

func (Disabled) FetchDaily(context.Context, string, string) (*domain.DailyRecord, error) {
	return nil, domain.ErrUnavailable
}

func (Disabled) FetchToiletList(context.Context, string, string) ([]domain.ToiletRecord, error) {
	return nil, domain.ErrUnavailable
}

func (Disabled) FetchPeriod(context.Context, string, string, string) ([]domain.PeriodDay, error) {
	return nil, domain.ErrUnavailable
}

func (Disabled) Send(context.Context, domain.SyncAction, any) {}

func (Disabled) Wait() {}
