package timeline

import (
	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// MedicationRow marks the days a medicine was given.
type MedicationRow struct {
	domain.MedicineInfo
	Given []bool `json:"given"`
}

// MedicationChart is a medicine by day matrix plus the drip volumes.
type MedicationChart struct {
	Dates []string        `json:"dates"`
	Drip  []*float64      `json:"drip"`
	Rows  []MedicationRow `json:"rows"`
}

// Medication builds a row for every catalogued medicine, prescriptions
// before supplements, even when it was never given in the period.
func Medication(days []domain.PeriodDay) MedicationChart {
	chart := MedicationChart{
		Dates: make([]string, len(days)),
		Drip:  make([]*float64, len(days)),
	}
	for i, d := range days {
		chart.Dates[i] = d.Date
		if d.Daily != nil {
			chart.Drip[i] = positive(d.Daily.Drip)
		}
	}

	for _, info := range domain.MedicineCatalog() {
		row := MedicationRow{MedicineInfo: info, Given: make([]bool, len(days))}
		for i, d := range days {
			row.Given[i] = d.Medicine[info.ID]
		}
		chart.Rows = append(chart.Rows, row)
	}

	return chart
}
