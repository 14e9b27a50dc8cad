package journal

import (
	"context"
	"sync"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

var _ remoteReader = &remoteReaderMock{}

type remoteReaderMock struct {
	FetchDailyFunc      func(ctx context.Context, subject, date string) (*domain.DailyRecord, error)
	FetchToiletListFunc func(ctx context.Context, subject, date string) ([]domain.ToiletRecord, error)
	FetchPeriodFunc     func(ctx context.Context, subject, start, end string) ([]domain.PeriodDay, error)

	calls struct {
		FetchDaily []struct {
			Subject string
			Date    string
		}
		FetchToiletList []struct {
			Subject string
			Date    string
		}
		FetchPeriod []struct {
			Subject string
			Start   string
			End     string
		}
	}
	lockFetchDaily      sync.RWMutex
	lockFetchToiletList sync.RWMutex
	lockFetchPeriod     sync.RWMutex
}

func (mock *remoteReaderMock) FetchDaily(ctx context.Context, subject, date string) (*domain.DailyRecord, error) {
	if mock.FetchDailyFunc == nil {
		panic("remoteReaderMock.FetchDailyFunc: method is nil but remoteReader.FetchDaily was just called")
	}
	callInfo := struct {
		Subject string
		Date    string
	}{Subject: subject, Date: date}
	mock.lockFetchDaily.Lock()
	mock.calls.FetchDaily = append(mock.calls.FetchDaily, callInfo)
	mock.lockFetchDaily.Unlock()
	return mock.FetchDailyFunc(ctx, subject, date)
}

func (mock *remoteReaderMock) FetchDailyCalls() []struct {
	Subject string
	Date    string
} {
	mock.lockFetchDaily.RLock()
	calls := mock.calls.FetchDaily
	mock.lockFetchDaily.RUnlock()
	return calls
}

func (mock *remoteReaderMock) FetchToiletList(ctx context.Context, subject, date string) ([]domain.ToiletRecord, error) {
	if mock.FetchToiletListFunc == nil {
		panic("remoteReaderMock.FetchToiletListFunc: method is nil but remoteReader.FetchToiletList was just called")
	}
	callInfo := struct {
		Subject string
		Date    string
	}{Subject: subject, Date: date}
	mock.lockFetchToiletList.Lock()
	mock.calls.FetchToiletList = append(mock.calls.FetchToiletList, callInfo)
	mock.lockFetchToiletList.Unlock()
	return mock.FetchToiletListFunc(ctx, subject, date)
}

func (mock *remoteReaderMock) FetchToiletListCalls() []struct {
	Subject string
	Date    string
} {
	mock.lockFetchToiletList.RLock()
	calls := mock.calls.FetchToiletList
	mock.lockFetchToiletList.RUnlock()
	return calls
}

func (mock *remoteReaderMock) FetchPeriod(ctx context.Context, subject, start, end string) ([]domain.PeriodDay, error) {
	if mock.FetchPeriodFunc == nil {
		panic("remoteReaderMock.FetchPeriodFunc: method is nil but remoteReader.FetchPeriod was just called")
	}
	callInfo := struct {
		Subject string
		Start   string
		End     string
	}{Subject: subject, Start: start, End: end}
	mock.lockFetchPeriod.Lock()
	mock.calls.FetchPeriod = append(mock.calls.FetchPeriod, callInfo)
	mock.lockFetchPeriod.Unlock()
	return mock.FetchPeriodFunc(ctx, subject, start, end)
}

func (mock *remoteReaderMock) FetchPeriodCalls() []struct {
	Subject string
	Start   string
	End     string
} {
	mock.lockFetchPeriod.RLock()
	calls := mock.calls.FetchPeriod
	mock.lockFetchPeriod.RUnlock()
	return calls
}

var _ remoteMirror = &remoteMirrorMock{}

type remoteMirrorMock struct {
	SendFunc func(ctx context.Context, action domain.SyncAction, record any)

	calls struct {
		Send []struct {
			Action domain.SyncAction
			Record any
		}
	}
	lockSend sync.RWMutex
}

func (mock *remoteMirrorMock) Send(ctx context.Context, action domain.SyncAction, record any) {
	if mock.SendFunc == nil {
		panic("remoteMirrorMock.SendFunc: method is nil but remoteMirror.Send was just called")
	}
	callInfo := struct {
		Action domain.SyncAction
		Record any
	}{Action: action, Record: record}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	mock.SendFunc(ctx, action, record)
}

func (mock *remoteMirrorMock) SendCalls() []struct {
	Action domain.SyncAction
	Record any
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
