// Package timeline derives chart series and timelines from period data.
// Every function is pure; callers fetch the period through the journal.
package timeline

import (
	"strings"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// VisitMarker flags a daily memo written on a clinic day.
const VisitMarker = "【通院】"

// Tag is a keyword found in a visit memo and its category.
type Tag struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// Diagnosis is a clinic-day memo with its keyword tags.
type Diagnosis struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Memo  string `json:"memo"`
	Tags  []Tag  `json:"tags"`
}

// keywords are matched in this order.
var keywords = []Tag{
	{"腎盂腎炎", "診断"},
	{"水腎症", "診断"},
	{"耐性菌", "検査"},
	{"クレアチニン", "検査"},
	{"貧血", "症状"},
	{"血尿", "症状"},
	{"カテーテル", "処置"},
	{"エコー", "検査"},
	{"血液検査", "検査"},
	{"開始", "投薬"},
	{"飲み切り", "投薬"},
	{"なくなる", "投薬"},
	{"嘔吐", "症状"},
	{"再開", "投薬"},
}

// Diagnoses extracts the memos of clinic days in date order.
func Diagnoses(days []domain.PeriodDay) []Diagnosis {
	out := []Diagnosis{}
	for _, d := range days {
		if d.Daily == nil || !strings.Contains(d.Daily.Memo, VisitMarker) {
			continue
		}
		memo := d.Daily.Memo

		tags := []Tag{}
		for _, k := range keywords {
			if strings.Contains(memo, k.Keyword) {
				tags = append(tags, k)
			}
		}

		out = append(out, Diagnosis{
			Date:  d.Date,
			Label: domain.ShortDate(d.Date),
			Memo:  strings.TrimSpace(strings.Replace(memo, VisitMarker, "", 1)),
			Tags:  tags,
		})
	}
	return out
}
