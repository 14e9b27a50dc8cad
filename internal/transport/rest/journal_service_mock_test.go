package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
	"github.com/heartmarshall/pet-health-journal/internal/service/journal"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	SaveDailyFunc    func(ctx context.Context, in journal.SaveDailyInput) (journal.Saved[domain.DailyRecord], error)
	GetDailyFunc     func(ctx context.Context, ref journal.DayRef) (domain.DailyRecord, error)
	OverviewFunc     func(ctx context.Context, ref journal.DayRef) (domain.DayOverview, error)
	RecountDailyFunc func(ctx context.Context, ref journal.DayRef) (journal.Saved[domain.DailyRecord], error)
	AddToiletFunc    func(ctx context.Context, in journal.AddToiletInput) (journal.ToiletChange, error)
	DeleteToiletFunc func(ctx context.Context, in journal.DeleteToiletInput) (journal.ToiletChange, error)
	ListToiletFunc   func(ctx context.Context, ref journal.DayRef) ([]domain.ToiletRecord, error)
	SaveMedicineFunc func(ctx context.Context, in journal.SaveMedicineInput) (journal.Saved[domain.MedicineRecord], error)
	GetMedicineFunc  func(ctx context.Context, ref journal.DayRef, timing domain.MedicineTiming) (domain.MedicineRecord, error)
	MedicineDayFunc  func(ctx context.Context, ref journal.DayRef) ([]domain.MedicineRecord, error)
	SaveHospitalFunc func(ctx context.Context, in journal.SaveHospitalInput) (journal.Saved[domain.HospitalRecord], error)
	ListHospitalFunc func(ctx context.Context, subject string) ([]domain.HospitalRecord, error)
	SaveLabTestFunc  func(ctx context.Context, in journal.SaveLabTestInput) (journal.Saved[domain.LabTestRecord], error)
	GetLabTestFunc   func(ctx context.Context, ref journal.DayRef) (domain.LabTestRecord, error)
	GetPeriodFunc    func(ctx context.Context, in journal.PeriodInput) ([]domain.PeriodDay, error)

	calls struct {
		SaveDaily []struct {
			Ctx context.Context
			In  journal.SaveDailyInput
		}
		GetDaily []struct {
			Ctx context.Context
			Ref journal.DayRef
		}
		Overview []struct {
			Ctx context.Context
			Ref journal.DayRef
		}
		RecountDaily []struct {
			Ctx context.Context
			Ref journal.DayRef
		}
		AddToilet []struct {
			Ctx context.Context
			In  journal.AddToiletInput
		}
		DeleteToilet []struct {
			Ctx context.Context
			In  journal.DeleteToiletInput
		}
		ListToilet []struct {
			Ctx context.Context
			Ref journal.DayRef
		}
		SaveMedicine []struct {
			Ctx context.Context
			In  journal.SaveMedicineInput
		}
		GetMedicine []struct {
			Ctx    context.Context
			Ref    journal.DayRef
			Timing domain.MedicineTiming
		}
		MedicineDay []struct {
			Ctx context.Context
			Ref journal.DayRef
		}
		SaveHospital []struct {
			Ctx context.Context
			In  journal.SaveHospitalInput
		}
		ListHospital []struct {
			Ctx     context.Context
			Subject string
		}
		SaveLabTest []struct {
			Ctx context.Context
			In  journal.SaveLabTestInput
		}
		GetLabTest []struct {
			Ctx context.Context
			Ref journal.DayRef
		}
		GetPeriod []struct {
			Ctx context.Context
			In  journal.PeriodInput
		}
	}
	lockSaveDaily    sync.RWMutex
	lockGetDaily     sync.RWMutex
	lockOverview     sync.RWMutex
	lockRecountDaily sync.RWMutex
	lockAddToilet    sync.RWMutex
	lockDeleteToilet sync.RWMutex
	lockListToilet   sync.RWMutex
	lockSaveMedicine sync.RWMutex
	lockGetMedicine  sync.RWMutex
	lockMedicineDay  sync.RWMutex
	lockSaveHospital sync.RWMutex
	lockListHospital sync.RWMutex
	lockSaveLabTest  sync.RWMutex
	lockGetLabTest   sync.RWMutex
	lockGetPeriod    sync.RWMutex
}

func (mock *journalServiceMock) SaveDaily(ctx context.Context, in journal.SaveDailyInput) (journal.Saved[domain.DailyRecord], error) {
	if mock.SaveDailyFunc == nil {
		panic("journalServiceMock.SaveDailyFunc: method is nil but journalService.SaveDaily was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.SaveDailyInput
	}{Ctx: ctx, In: in}
	mock.lockSaveDaily.Lock()
	mock.calls.SaveDaily = append(mock.calls.SaveDaily, callInfo)
	mock.lockSaveDaily.Unlock()
	return mock.SaveDailyFunc(ctx, in)
}

func (mock *journalServiceMock) SaveDailyCalls() []struct {
	Ctx context.Context
	In  journal.SaveDailyInput
} {
	mock.lockSaveDaily.RLock()
	calls := mock.calls.SaveDaily
	mock.lockSaveDaily.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetDaily(ctx context.Context, ref journal.DayRef) (domain.DailyRecord, error) {
	if mock.GetDailyFunc == nil {
		panic("journalServiceMock.GetDailyFunc: method is nil but journalService.GetDaily was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref journal.DayRef
	}{Ctx: ctx, Ref: ref}
	mock.lockGetDaily.Lock()
	mock.calls.GetDaily = append(mock.calls.GetDaily, callInfo)
	mock.lockGetDaily.Unlock()
	return mock.GetDailyFunc(ctx, ref)
}

func (mock *journalServiceMock) GetDailyCalls() []struct {
	Ctx context.Context
	Ref journal.DayRef
} {
	mock.lockGetDaily.RLock()
	calls := mock.calls.GetDaily
	mock.lockGetDaily.RUnlock()
	return calls
}

func (mock *journalServiceMock) Overview(ctx context.Context, ref journal.DayRef) (domain.DayOverview, error) {
	if mock.OverviewFunc == nil {
		panic("journalServiceMock.OverviewFunc: method is nil but journalService.Overview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref journal.DayRef
	}{Ctx: ctx, Ref: ref}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx, ref)
}

func (mock *journalServiceMock) OverviewCalls() []struct {
	Ctx context.Context
	Ref journal.DayRef
} {
	mock.lockOverview.RLock()
	calls := mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}

func (mock *journalServiceMock) RecountDaily(ctx context.Context, ref journal.DayRef) (journal.Saved[domain.DailyRecord], error) {
	if mock.RecountDailyFunc == nil {
		panic("journalServiceMock.RecountDailyFunc: method is nil but journalService.RecountDaily was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref journal.DayRef
	}{Ctx: ctx, Ref: ref}
	mock.lockRecountDaily.Lock()
	mock.calls.RecountDaily = append(mock.calls.RecountDaily, callInfo)
	mock.lockRecountDaily.Unlock()
	return mock.RecountDailyFunc(ctx, ref)
}

func (mock *journalServiceMock) RecountDailyCalls() []struct {
	Ctx context.Context
	Ref journal.DayRef
} {
	mock.lockRecountDaily.RLock()
	calls := mock.calls.RecountDaily
	mock.lockRecountDaily.RUnlock()
	return calls
}

func (mock *journalServiceMock) AddToilet(ctx context.Context, in journal.AddToiletInput) (journal.ToiletChange, error) {
	if mock.AddToiletFunc == nil {
		panic("journalServiceMock.AddToiletFunc: method is nil but journalService.AddToilet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.AddToiletInput
	}{Ctx: ctx, In: in}
	mock.lockAddToilet.Lock()
	mock.calls.AddToilet = append(mock.calls.AddToilet, callInfo)
	mock.lockAddToilet.Unlock()
	return mock.AddToiletFunc(ctx, in)
}

func (mock *journalServiceMock) AddToiletCalls() []struct {
	Ctx context.Context
	In  journal.AddToiletInput
} {
	mock.lockAddToilet.RLock()
	calls := mock.calls.AddToilet
	mock.lockAddToilet.RUnlock()
	return calls
}

func (mock *journalServiceMock) DeleteToilet(ctx context.Context, in journal.DeleteToiletInput) (journal.ToiletChange, error) {
	if mock.DeleteToiletFunc == nil {
		panic("journalServiceMock.DeleteToiletFunc: method is nil but journalService.DeleteToilet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.DeleteToiletInput
	}{Ctx: ctx, In: in}
	mock.lockDeleteToilet.Lock()
	mock.calls.DeleteToilet = append(mock.calls.DeleteToilet, callInfo)
	mock.lockDeleteToilet.Unlock()
	return mock.DeleteToiletFunc(ctx, in)
}

func (mock *journalServiceMock) DeleteToiletCalls() []struct {
	Ctx context.Context
	In  journal.DeleteToiletInput
} {
	mock.lockDeleteToilet.RLock()
	calls := mock.calls.DeleteToilet
	mock.lockDeleteToilet.RUnlock()
	return calls
}

func (mock *journalServiceMock) ListToilet(ctx context.Context, ref journal.DayRef) ([]domain.ToiletRecord, error) {
	if mock.ListToiletFunc == nil {
		panic("journalServiceMock.ListToiletFunc: method is nil but journalService.ListToilet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref journal.DayRef
	}{Ctx: ctx, Ref: ref}
	mock.lockListToilet.Lock()
	mock.calls.ListToilet = append(mock.calls.ListToilet, callInfo)
	mock.lockListToilet.Unlock()
	return mock.ListToiletFunc(ctx, ref)
}

func (mock *journalServiceMock) ListToiletCalls() []struct {
	Ctx context.Context
	Ref journal.DayRef
} {
	mock.lockListToilet.RLock()
	calls := mock.calls.ListToilet
	mock.lockListToilet.RUnlock()
	return calls
}

func (mock *journalServiceMock) SaveMedicine(ctx context.Context, in journal.SaveMedicineInput) (journal.Saved[domain.MedicineRecord], error) {
	if mock.SaveMedicineFunc == nil {
		panic("journalServiceMock.SaveMedicineFunc: method is nil but journalService.SaveMedicine was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.SaveMedicineInput
	}{Ctx: ctx, In: in}
	mock.lockSaveMedicine.Lock()
	mock.calls.SaveMedicine = append(mock.calls.SaveMedicine, callInfo)
	mock.lockSaveMedicine.Unlock()
	return mock.SaveMedicineFunc(ctx, in)
}

func (mock *journalServiceMock) SaveMedicineCalls() []struct {
	Ctx context.Context
	In  journal.SaveMedicineInput
} {
	mock.lockSaveMedicine.RLock()
	calls := mock.calls.SaveMedicine
	mock.lockSaveMedicine.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetMedicine(ctx context.Context, ref journal.DayRef, timing domain.MedicineTiming) (domain.MedicineRecord, error) {
	if mock.GetMedicineFunc == nil {
		panic("journalServiceMock.GetMedicineFunc: method is nil but journalService.GetMedicine was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Ref    journal.DayRef
		Timing domain.MedicineTiming
	}{Ctx: ctx, Ref: ref, Timing: timing}
	mock.lockGetMedicine.Lock()
	mock.calls.GetMedicine = append(mock.calls.GetMedicine, callInfo)
	mock.lockGetMedicine.Unlock()
	return mock.GetMedicineFunc(ctx, ref, timing)
}

func (mock *journalServiceMock) GetMedicineCalls() []struct {
	Ctx    context.Context
	Ref    journal.DayRef
	Timing domain.MedicineTiming
} {
	mock.lockGetMedicine.RLock()
	calls := mock.calls.GetMedicine
	mock.lockGetMedicine.RUnlock()
	return calls
}

func (mock *journalServiceMock) MedicineDay(ctx context.Context, ref journal.DayRef) ([]domain.MedicineRecord, error) {
	if mock.MedicineDayFunc == nil {
		panic("journalServiceMock.MedicineDayFunc: method is nil but journalService.MedicineDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref journal.DayRef
	}{Ctx: ctx, Ref: ref}
	mock.lockMedicineDay.Lock()
	mock.calls.MedicineDay = append(mock.calls.MedicineDay, callInfo)
	mock.lockMedicineDay.Unlock()
	return mock.MedicineDayFunc(ctx, ref)
}

func (mock *journalServiceMock) MedicineDayCalls() []struct {
	Ctx context.Context
	Ref journal.DayRef
} {
	mock.lockMedicineDay.RLock()
	calls := mock.calls.MedicineDay
	mock.lockMedicineDay.RUnlock()
	return calls
}

func (mock *journalServiceMock) SaveHospital(ctx context.Context, in journal.SaveHospitalInput) (journal.Saved[domain.HospitalRecord], error) {
	if mock.SaveHospitalFunc == nil {
		panic("journalServiceMock.SaveHospitalFunc: method is nil but journalService.SaveHospital was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.SaveHospitalInput
	}{Ctx: ctx, In: in}
	mock.lockSaveHospital.Lock()
	mock.calls.SaveHospital = append(mock.calls.SaveHospital, callInfo)
	mock.lockSaveHospital.Unlock()
	return mock.SaveHospitalFunc(ctx, in)
}

func (mock *journalServiceMock) SaveHospitalCalls() []struct {
	Ctx context.Context
	In  journal.SaveHospitalInput
} {
	mock.lockSaveHospital.RLock()
	calls := mock.calls.SaveHospital
	mock.lockSaveHospital.RUnlock()
	return calls
}

func (mock *journalServiceMock) ListHospital(ctx context.Context, subject string) ([]domain.HospitalRecord, error) {
	if mock.ListHospitalFunc == nil {
		panic("journalServiceMock.ListHospitalFunc: method is nil but journalService.ListHospital was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
	}{Ctx: ctx, Subject: subject}
	mock.lockListHospital.Lock()
	mock.calls.ListHospital = append(mock.calls.ListHospital, callInfo)
	mock.lockListHospital.Unlock()
	return mock.ListHospitalFunc(ctx, subject)
}

func (mock *journalServiceMock) ListHospitalCalls() []struct {
	Ctx     context.Context
	Subject string
} {
	mock.lockListHospital.RLock()
	calls := mock.calls.ListHospital
	mock.lockListHospital.RUnlock()
	return calls
}

func (mock *journalServiceMock) SaveLabTest(ctx context.Context, in journal.SaveLabTestInput) (journal.Saved[domain.LabTestRecord], error) {
	if mock.SaveLabTestFunc == nil {
		panic("journalServiceMock.SaveLabTestFunc: method is nil but journalService.SaveLabTest was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.SaveLabTestInput
	}{Ctx: ctx, In: in}
	mock.lockSaveLabTest.Lock()
	mock.calls.SaveLabTest = append(mock.calls.SaveLabTest, callInfo)
	mock.lockSaveLabTest.Unlock()
	return mock.SaveLabTestFunc(ctx, in)
}

func (mock *journalServiceMock) SaveLabTestCalls() []struct {
	Ctx context.Context
	In  journal.SaveLabTestInput
} {
	mock.lockSaveLabTest.RLock()
	calls := mock.calls.SaveLabTest
	mock.lockSaveLabTest.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetLabTest(ctx context.Context, ref journal.DayRef) (domain.LabTestRecord, error) {
	if mock.GetLabTestFunc == nil {
		panic("journalServiceMock.GetLabTestFunc: method is nil but journalService.GetLabTest was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref journal.DayRef
	}{Ctx: ctx, Ref: ref}
	mock.lockGetLabTest.Lock()
	mock.calls.GetLabTest = append(mock.calls.GetLabTest, callInfo)
	mock.lockGetLabTest.Unlock()
	return mock.GetLabTestFunc(ctx, ref)
}

func (mock *journalServiceMock) GetLabTestCalls() []struct {
	Ctx context.Context
	Ref journal.DayRef
} {
	mock.lockGetLabTest.RLock()
	calls := mock.calls.GetLabTest
	mock.lockGetLabTest.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetPeriod(ctx context.Context, in journal.PeriodInput) ([]domain.PeriodDay, error) {
	if mock.GetPeriodFunc == nil {
		panic("journalServiceMock.GetPeriodFunc: method is nil but journalService.GetPeriod was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  journal.PeriodInput
	}{Ctx: ctx, In: in}
	mock.lockGetPeriod.Lock()
	mock.calls.GetPeriod = append(mock.calls.GetPeriod, callInfo)
	mock.lockGetPeriod.Unlock()
	return mock.GetPeriodFunc(ctx, in)
}

func (mock *journalServiceMock) GetPeriodCalls() []struct {
	Ctx context.Context
	In  journal.PeriodInput
} {
	mock.lockGetPeriod.RLock()
	calls := mock.calls.GetPeriod
	mock.lockGetPeriod.RUnlock()
	return calls
}
