package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/pet-health-journal/internal/service/export"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	AllJSONFunc func(ctx context.Context) ([]byte, error)
	FilesFunc   func(ctx context.Context, subject string) ([]export.File, error)
	ArchiveFunc func(ctx context.Context, subject string) ([]string, error)

	calls struct {
		AllJSON []struct {
			Ctx context.Context
		}
		Files []struct {
			Ctx     context.Context
			Subject string
		}
		Archive []struct {
			Ctx     context.Context
			Subject string
		}
	}
	lockAllJSON sync.RWMutex
	lockFiles   sync.RWMutex
	lockArchive sync.RWMutex
}

func (mock *exportServiceMock) AllJSON(ctx context.Context) ([]byte, error) {
	if mock.AllJSONFunc == nil {
		panic("exportServiceMock.AllJSONFunc: method is nil but exportService.AllJSON was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAllJSON.Lock()
	mock.calls.AllJSON = append(mock.calls.AllJSON, callInfo)
	mock.lockAllJSON.Unlock()
	return mock.AllJSONFunc(ctx)
}

func (mock *exportServiceMock) AllJSONCalls() []struct {
	Ctx context.Context
} {
	mock.lockAllJSON.RLock()
	calls := mock.calls.AllJSON
	mock.lockAllJSON.RUnlock()
	return calls
}

func (mock *exportServiceMock) Files(ctx context.Context, subject string) ([]export.File, error) {
	if mock.FilesFunc == nil {
		panic("exportServiceMock.FilesFunc: method is nil but exportService.Files was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
	}{Ctx: ctx, Subject: subject}
	mock.lockFiles.Lock()
	mock.calls.Files = append(mock.calls.Files, callInfo)
	mock.lockFiles.Unlock()
	return mock.FilesFunc(ctx, subject)
}

func (mock *exportServiceMock) FilesCalls() []struct {
	Ctx     context.Context
	Subject string
} {
	mock.lockFiles.RLock()
	calls := mock.calls.Files
	mock.lockFiles.RUnlock()
	return calls
}

func (mock *exportServiceMock) Archive(ctx context.Context, subject string) ([]string, error) {
	if mock.ArchiveFunc == nil {
		panic("exportServiceMock.ArchiveFunc: method is nil but exportService.Archive was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
	}{Ctx: ctx, Subject: subject}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, subject)
}

func (mock *exportServiceMock) ArchiveCalls() []struct {
	Ctx     context.Context
	Subject string
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}
