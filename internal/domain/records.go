package domain

import (
	"slices"
	"time"
)

// DailyMetrics are the user-entered fields of a daily observation.
type DailyMetrics struct {
	Weight         Number         `json:"weight"`
	Energy         Level          `json:"energy,omitempty"`
	Appetite       Level          `json:"appetite,omitempty"`
	Water          Number         `json:"water"`
	DryFood        Number         `json:"dryFood"`
	WetFood        Number         `json:"wetFood"`
	Churu          Number         `json:"churu"`
	Treats         Number         `json:"treats"`
	UrineCount     Count          `json:"urineCount"`
	FecesCount     Count          `json:"fecesCount"`
	FecesCondition FecesCondition `json:"fecesCondition,omitempty"`
	Memo           string         `json:"memo,omitempty"`
}

// DailyRecord is one observation per subject per date. UrineCount and
// FecesCount are derived from the toilet log whenever the log has entries
// for the date.
type DailyRecord struct {
	Subject string `json:"cat"`
	Date    string `json:"date"`
	DailyMetrics
	// Drip is the infusion volume reported by the remote aggregate.
	Drip      Number    `json:"drip"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ToiletEntry is the user-entered part of a toilet event.
type ToiletEntry struct {
	Time   string       `json:"time"`
	Type   ToiletType   `json:"type"`
	Amount ToiletAmount `json:"amount,omitempty"`
	Memo   string       `json:"memo,omitempty"`
}

// ToiletRecord is a single timestamped toilet event.
type ToiletRecord struct {
	ID      string `json:"id"`
	Subject string `json:"cat"`
	Date    string `json:"date"`
	ToiletEntry
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// SortToilet orders events by time of day. The sort is stable so events
// sharing a time keep insertion order.
func SortToilet(records []ToiletRecord) {
	slices.SortStableFunc(records, func(a, b ToiletRecord) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
}

// ToiletCount is the derived daily tally.
type ToiletCount struct {
	Urine Count `json:"urine"`
	Feces Count `json:"feces"`
}

// CountToilet applies the single derivation rule: "both" counts once
// toward each tally.
func CountToilet(records []ToiletRecord) ToiletCount {
	var c ToiletCount
	for _, r := range records {
		if r.Type.CountsAsUrine() {
			c.Urine++
		}
		if r.Type.CountsAsFeces() {
			c.Feces++
		}
	}
	return c
}

// MedicineDose is the user-entered part of a dosing slot.
type MedicineDose struct {
	Medicines []MedicineID `json:"medicines"`
	Memo      string       `json:"memo,omitempty"`
}

// MedicineRecord is the set of medicines given in one timing slot.
type MedicineRecord struct {
	Subject string         `json:"cat"`
	Date    string         `json:"date"`
	Timing  MedicineTiming `json:"timing"`
	MedicineDose
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// HospitalVisit is the user-entered part of a hospital record.
type HospitalVisit struct {
	Weight       Number      `json:"weight"`
	Treatments   []Treatment `json:"treatments"`
	DripAmount   Number      `json:"dripAmount"`
	Diagnosis    string      `json:"diagnosis,omitempty"`
	Prescription string      `json:"prescription,omitempty"`
}

// HasDrip reports whether the visit included an infusion.
func (v HospitalVisit) HasDrip() bool {
	return slices.Contains(v.Treatments, TreatmentDrip)
}

// HospitalRecord is a clinical visit. DripAmount is only present when the
// treatments include a drip.
type HospitalRecord struct {
	ID       string `json:"id"`
	Subject  string `json:"cat"`
	DateTime string `json:"datetime"`
	HospitalVisit
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// LabPanel holds blood and urine test values. Qualitative urine readings
// are free text; the paired quantitative values are numeric or absent.
type LabPanel struct {
	WBC Number `json:"wbc"`
	HCT Number `json:"hct"`
	PLT Number `json:"plt"`

	Glucose    Number `json:"glucose"`
	TP         Number `json:"tp"`
	Alb        Number `json:"alb"`
	BUN        Number `json:"bun"`
	Creatinine Number `json:"creatinine"`
	TBil       Number `json:"tbil"`
	AST        Number `json:"ast"`
	ALT        Number `json:"alt"`
	ALP        Number `json:"alp"`
	Lipase     Number `json:"lipase"`
	CPK        Number `json:"cpk"`
	Calcium    Number `json:"calcium"`
	Phosphorus Number `json:"phosphorus"`
	Sodium     Number `json:"sodium"`
	Potassium  Number `json:"potassium"`
	Chloride   Number `json:"chloride"`

	UrineGlucoseQual   string `json:"urineGlucoseQual,omitempty"`
	UrineGlucose       Number `json:"urineGlucose"`
	UrineProteinQual   string `json:"urineProteinQual,omitempty"`
	UrineProtein       Number `json:"urineProtein"`
	UrineBilirubinQual string `json:"urineBilirubinQual,omitempty"`
	UrineBilirubin     Number `json:"urineBilirubin"`
	UrineBloodQual     string `json:"urineBloodQual,omitempty"`
	UrineBlood         Number `json:"urineBlood"`
	UrineKetoneQual    string `json:"urineKetoneQual,omitempty"`
	UrineKetone        Number `json:"urineKetone"`
	UrinePH            Number `json:"urinePh"`
	UrineSG            Number `json:"urineSg"`
	UrineNitrite       string `json:"urineNitrite,omitempty"`
	UrineWBC           string `json:"urineWbc,omitempty"`

	Memo string `json:"memo,omitempty"`
}

// LabTestRecord is a lab panel taken on a date.
type LabTestRecord struct {
	Subject string `json:"cat"`
	Date    string `json:"date"`
	LabPanel
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// PeriodDay is one date of a period summary.
type PeriodDay struct {
	Date        string              `json:"date"`
	Daily       *DailyRecord        `json:"daily"`
	ToiletCount ToiletCount         `json:"toiletCount"`
	Medicine    map[MedicineID]bool `json:"medicine,omitempty"`
	LabTest     *LabTestRecord      `json:"labtest,omitempty"`
}

// DayOverview combines the daily record with the toilet log of the date.
type DayOverview struct {
	Date        string         `json:"date"`
	Daily       *DailyRecord   `json:"daily"`
	Toilet      []ToiletRecord `json:"toilet"`
	ToiletCount ToiletCount    `json:"toiletCount"`
}

// DayKey addresses per-date records of a subject.
func DayKey(subject, date string) string { return subject + "_" + date }

// SlotKey addresses a medicine slot.
func SlotKey(subject, date string, timing MedicineTiming) string {
	return subject + "_" + date + "_" + string(timing)
}
