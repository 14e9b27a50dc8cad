package journal

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

func checkSubject(errs []domain.FieldError, subject string) []domain.FieldError {
	if subject == "" {
		return append(errs, domain.FieldError{Field: "cat", Message: "required"})
	}
	if _, ok := domain.LookupSubject(subject); !ok {
		return append(errs, domain.FieldError{Field: "cat", Message: "unknown subject"})
	}
	return errs
}

func checkDate(errs []domain.FieldError, field, date string) []domain.FieldError {
	if date == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if !domain.ValidDate(date) {
		return append(errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
	}
	return errs
}

func checkNonNegative(errs []domain.FieldError, field string, n domain.Number) []domain.FieldError {
	if d, ok := n.Decimal(); ok && d.IsNegative() {
		return append(errs, domain.FieldError{Field: field, Message: "must be non-negative"})
	}
	return errs
}

func validationResult(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DayRef addresses the records of one subject on one date.
type DayRef struct {
	Subject string
	Date    string
}

// Validate checks all fields and collects all errors.
func (r DayRef) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, r.Subject)
	errs = checkDate(errs, "date", r.Date)
	return validationResult(errs)
}

// SaveDailyInput holds the parameters for saving a daily record.
type SaveDailyInput struct {
	Subject string
	Date    string
	domain.DailyMetrics
}

// Validate checks all fields and collects all errors.
func (i SaveDailyInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)
	errs = checkDate(errs, "date", i.Date)

	if !i.Energy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "energy", Message: "must be high, normal or low"})
	}
	if !i.Appetite.IsValid() {
		errs = append(errs, domain.FieldError{Field: "appetite", Message: "must be high, normal or low"})
	}
	if !i.FecesCondition.IsValid() {
		errs = append(errs, domain.FieldError{Field: "fecesCondition", Message: "unknown condition"})
	}
	errs = checkNonNegative(errs, "weight", i.Weight)
	errs = checkNonNegative(errs, "water", i.Water)
	errs = checkNonNegative(errs, "dryFood", i.DryFood)
	errs = checkNonNegative(errs, "wetFood", i.WetFood)
	if i.UrineCount < 0 {
		errs = append(errs, domain.FieldError{Field: "urineCount", Message: "must be non-negative"})
	}
	if i.FecesCount < 0 {
		errs = append(errs, domain.FieldError{Field: "fecesCount", Message: "must be non-negative"})
	}

	return validationResult(errs)
}

// AddToiletInput holds the parameters for logging a toilet event.
type AddToiletInput struct {
	Subject string
	Date    string
	domain.ToiletEntry
}

// Validate checks all fields and collects all errors.
func (i AddToiletInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)
	errs = checkDate(errs, "date", i.Date)

	if !domain.ValidTimeOfDay(i.Time) {
		errs = append(errs, domain.FieldError{Field: "time", Message: "must be HH:MM"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be urine, feces or both"})
	}
	if !i.Amount.IsValid() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "unknown amount"})
	}

	return validationResult(errs)
}

// DeleteToiletInput holds the parameters for removing a toilet event.
type DeleteToiletInput struct {
	Subject string
	Date    string
	ID      string
}

// Validate checks all fields and collects all errors.
func (i DeleteToiletInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)
	errs = checkDate(errs, "date", i.Date)
	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	return validationResult(errs)
}

// SaveMedicineInput holds the parameters for saving a dosing slot.
type SaveMedicineInput struct {
	Subject string
	Date    string
	Timing  domain.MedicineTiming
	domain.MedicineDose
}

// Validate checks all fields and collects all errors.
func (i SaveMedicineInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)
	errs = checkDate(errs, "date", i.Date)

	if !i.Timing.IsValid() {
		errs = append(errs, domain.FieldError{Field: "timing", Message: "must be morning, noon, evening or night"})
	}
	for _, id := range i.Medicines {
		if !domain.KnownMedicine(id) {
			errs = append(errs, domain.FieldError{Field: "medicines", Message: "unknown medicine " + string(id)})
		}
	}

	return validationResult(errs)
}

// SaveHospitalInput holds the parameters for recording a hospital visit.
type SaveHospitalInput struct {
	Subject  string
	DateTime string
	domain.HospitalVisit
}

// Validate checks all fields and collects all errors.
func (i SaveHospitalInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)

	if !domain.ValidDateTime(i.DateTime) {
		errs = append(errs, domain.FieldError{Field: "datetime", Message: "must be YYYY-MM-DDTHH:MM"})
	}
	for _, tr := range i.Treatments {
		if !tr.IsValid() {
			errs = append(errs, domain.FieldError{Field: "treatments", Message: "unknown treatment " + strconv.Quote(string(tr))})
			break
		}
	}
	errs = checkNonNegative(errs, "weight", i.Weight)
	errs = checkNonNegative(errs, "dripAmount", i.DripAmount)

	return validationResult(errs)
}

// SaveLabTestInput holds the parameters for saving a lab panel.
type SaveLabTestInput struct {
	Subject string
	Date    string
	domain.LabPanel
}

// Validate checks all fields and collects all errors.
func (i SaveLabTestInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)
	errs = checkDate(errs, "date", i.Date)
	return validationResult(errs)
}

// PeriodInput holds the parameters for a period summary.
type PeriodInput struct {
	Subject string
	Start   string
	End     string
}

// Validate checks all fields and collects all errors.
func (i PeriodInput) Validate() error {
	var errs []domain.FieldError
	errs = checkSubject(errs, i.Subject)
	errs = checkDate(errs, "startDate", i.Start)
	errs = checkDate(errs, "endDate", i.End)
	if len(errs) > 0 {
		return validationResult(errs)
	}

	dates, err := domain.DatesBetween(i.Start, i.End)
	if err != nil {
		return domain.NewValidationError("endDate", "must not be before startDate")
	}
	if len(dates) > domain.MaxPeriodDays {
		return domain.NewValidationError("endDate", "period too long")
	}
	return nil
}
