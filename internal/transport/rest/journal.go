package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
	"github.com/heartmarshall/pet-health-journal/internal/service/journal"
	"github.com/heartmarshall/pet-health-journal/internal/service/timeline"
	"github.com/heartmarshall/pet-health-journal/pkg/ctxutil"
)

// journalService defines the minimal interface needed by JournalHandler.
type journalService interface {
	SaveDaily(ctx context.Context, in journal.SaveDailyInput) (journal.Saved[domain.DailyRecord], error)
	GetDaily(ctx context.Context, ref journal.DayRef) (domain.DailyRecord, error)
	Overview(ctx context.Context, ref journal.DayRef) (domain.DayOverview, error)
	RecountDaily(ctx context.Context, ref journal.DayRef) (journal.Saved[domain.DailyRecord], error)

	AddToilet(ctx context.Context, in journal.AddToiletInput) (journal.ToiletChange, error)
	DeleteToilet(ctx context.Context, in journal.DeleteToiletInput) (journal.ToiletChange, error)
	ListToilet(ctx context.Context, ref journal.DayRef) ([]domain.ToiletRecord, error)

	SaveMedicine(ctx context.Context, in journal.SaveMedicineInput) (journal.Saved[domain.MedicineRecord], error)
	GetMedicine(ctx context.Context, ref journal.DayRef, timing domain.MedicineTiming) (domain.MedicineRecord, error)
	MedicineDay(ctx context.Context, ref journal.DayRef) ([]domain.MedicineRecord, error)

	SaveHospital(ctx context.Context, in journal.SaveHospitalInput) (journal.Saved[domain.HospitalRecord], error)
	ListHospital(ctx context.Context, subject string) ([]domain.HospitalRecord, error)

	SaveLabTest(ctx context.Context, in journal.SaveLabTestInput) (journal.Saved[domain.LabTestRecord], error)
	GetLabTest(ctx context.Context, ref journal.DayRef) (domain.LabTestRecord, error)

	GetPeriod(ctx context.Context, in journal.PeriodInput) ([]domain.PeriodDay, error)
}

// JournalHandler serves the journal REST endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

// Register mounts the journal routes on mux.
func (h *JournalHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/subjects", h.Subjects)
	mux.HandleFunc("GET /api/medicines", h.Medicines)

	mux.HandleFunc("GET /api/subjects/{subject}/days/{date}", scoped(h.Overview))

	mux.HandleFunc("GET /api/subjects/{subject}/daily/{date}", scoped(h.GetDaily))
	mux.HandleFunc("PUT /api/subjects/{subject}/daily/{date}", scoped(h.SaveDaily))
	mux.HandleFunc("POST /api/subjects/{subject}/daily/{date}/recount", scoped(h.RecountDaily))

	mux.HandleFunc("GET /api/subjects/{subject}/toilet/{date}", scoped(h.ListToilet))
	mux.HandleFunc("POST /api/subjects/{subject}/toilet/{date}", scoped(h.AddToilet))
	mux.HandleFunc("DELETE /api/subjects/{subject}/toilet/{date}/{id}", scoped(h.DeleteToilet))

	mux.HandleFunc("GET /api/subjects/{subject}/medicine/{date}", scoped(h.MedicineDay))
	mux.HandleFunc("GET /api/subjects/{subject}/medicine/{date}/{timing}", scoped(h.GetMedicine))
	mux.HandleFunc("PUT /api/subjects/{subject}/medicine/{date}/{timing}", scoped(h.SaveMedicine))

	mux.HandleFunc("GET /api/subjects/{subject}/hospital", scoped(h.ListHospital))
	mux.HandleFunc("POST /api/subjects/{subject}/hospital", scoped(h.SaveHospital))

	mux.HandleFunc("GET /api/subjects/{subject}/labtest/{date}", scoped(h.GetLabTest))
	mux.HandleFunc("PUT /api/subjects/{subject}/labtest/{date}", scoped(h.SaveLabTest))

	mux.HandleFunc("GET /api/subjects/{subject}/period", scoped(h.Period))
	mux.HandleFunc("GET /api/subjects/{subject}/charts", scoped(h.Charts))
}

// scoped puts the path subject into the request context.
func scoped(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r.WithContext(ctxutil.WithSubject(r.Context(), r.PathValue("subject"))))
	}
}

func dayRef(r *http.Request) journal.DayRef {
	return journal.DayRef{Subject: r.PathValue("subject"), Date: r.PathValue("date")}
}

func periodInput(r *http.Request) journal.PeriodInput {
	q := r.URL.Query()
	return journal.PeriodInput{
		Subject: r.PathValue("subject"),
		Start:   q.Get("start"),
		End:     q.Get("end"),
	}
}

// Subjects handles GET /api/subjects.
func (h *JournalHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Subjects())
}

// Medicines handles GET /api/medicines.
func (h *JournalHandler) Medicines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.MedicineCatalog())
}

// Overview handles GET /api/subjects/{subject}/days/{date}.
func (h *JournalHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context(), dayRef(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

// GetDaily handles GET /api/subjects/{subject}/daily/{date}.
func (h *JournalHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetDaily(r.Context(), dayRef(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// SaveDaily handles PUT /api/subjects/{subject}/daily/{date}.
func (h *JournalHandler) SaveDaily(w http.ResponseWriter, r *http.Request) {
	var req domain.DailyMetrics
	if !decodeBody(w, r, &req) {
		return
	}

	ref := dayRef(r)
	saved, err := h.svc.SaveDaily(r.Context(), journal.SaveDailyInput{
		Subject:      ref.Subject,
		Date:         ref.Date,
		DailyMetrics: req,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// RecountDaily handles POST /api/subjects/{subject}/daily/{date}/recount.
func (h *JournalHandler) RecountDaily(w http.ResponseWriter, r *http.Request) {
	saved, err := h.svc.RecountDaily(r.Context(), dayRef(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// ListToilet handles GET /api/subjects/{subject}/toilet/{date}.
func (h *JournalHandler) ListToilet(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListToilet(r.Context(), dayRef(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// AddToilet handles POST /api/subjects/{subject}/toilet/{date}.
func (h *JournalHandler) AddToilet(w http.ResponseWriter, r *http.Request) {
	var req domain.ToiletEntry
	if !decodeBody(w, r, &req) {
		return
	}

	ref := dayRef(r)
	change, err := h.svc.AddToilet(r.Context(), journal.AddToiletInput{
		Subject:     ref.Subject,
		Date:        ref.Date,
		ToiletEntry: req,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, change)
}

// DeleteToilet handles DELETE /api/subjects/{subject}/toilet/{date}/{id}.
func (h *JournalHandler) DeleteToilet(w http.ResponseWriter, r *http.Request) {
	ref := dayRef(r)
	change, err := h.svc.DeleteToilet(r.Context(), journal.DeleteToiletInput{
		Subject: ref.Subject,
		Date:    ref.Date,
		ID:      r.PathValue("id"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, change)
}

// MedicineDay handles GET /api/subjects/{subject}/medicine/{date}.
func (h *JournalHandler) MedicineDay(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.MedicineDay(r.Context(), dayRef(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

// GetMedicine handles GET /api/subjects/{subject}/medicine/{date}/{timing}.
func (h *JournalHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetMedicine(r.Context(), dayRef(r), domain.MedicineTiming(r.PathValue("timing")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// SaveMedicine handles PUT /api/subjects/{subject}/medicine/{date}/{timing}.
func (h *JournalHandler) SaveMedicine(w http.ResponseWriter, r *http.Request) {
	var req domain.MedicineDose
	if !decodeBody(w, r, &req) {
		return
	}

	ref := dayRef(r)
	saved, err := h.svc.SaveMedicine(r.Context(), journal.SaveMedicineInput{
		Subject:      ref.Subject,
		Date:         ref.Date,
		Timing:       domain.MedicineTiming(r.PathValue("timing")),
		MedicineDose: req,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// ListHospital handles GET /api/subjects/{subject}/hospital.
func (h *JournalHandler) ListHospital(w http.ResponseWriter, r *http.Request) {
	visits, err := h.svc.ListHospital(r.Context(), r.PathValue("subject"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, visits)
}

type hospitalRequest struct {
	DateTime string `json:"datetime"`
	domain.HospitalVisit
}

// SaveHospital handles POST /api/subjects/{subject}/hospital.
func (h *JournalHandler) SaveHospital(w http.ResponseWriter, r *http.Request) {
	var req hospitalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := h.svc.SaveHospital(r.Context(), journal.SaveHospitalInput{
		Subject:       r.PathValue("subject"),
		DateTime:      req.DateTime,
		HospitalVisit: req.HospitalVisit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// GetLabTest handles GET /api/subjects/{subject}/labtest/{date}.
func (h *JournalHandler) GetLabTest(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetLabTest(r.Context(), dayRef(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// SaveLabTest handles PUT /api/subjects/{subject}/labtest/{date}.
func (h *JournalHandler) SaveLabTest(w http.ResponseWriter, r *http.Request) {
	var req domain.LabPanel
	if !decodeBody(w, r, &req) {
		return
	}

	ref := dayRef(r)
	saved, err := h.svc.SaveLabTest(r.Context(), journal.SaveLabTestInput{
		Subject:  ref.Subject,
		Date:     ref.Date,
		LabPanel: req,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Period handles GET /api/subjects/{subject}/period?start=&end=.
func (h *JournalHandler) Period(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.GetPeriod(r.Context(), periodInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

type chartsResponse struct {
	Series     timeline.Charts          `json:"series"`
	Medication timeline.MedicationChart `json:"medication"`
	Diagnoses  []timeline.Diagnosis     `json:"diagnoses"`
}

// Charts handles GET /api/subjects/{subject}/charts?start=&end=.
func (h *JournalHandler) Charts(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.GetPeriod(r.Context(), periodInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chartsResponse{
		Series:     timeline.Series(days),
		Medication: timeline.Medication(days),
		Diagnoses:  timeline.Diagnoses(days),
	})
}
