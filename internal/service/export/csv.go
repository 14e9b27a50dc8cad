package export

import (
	"bytes"
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// BOM makes spreadsheet applications read the CSV as UTF-8.
const BOM = "\uFEFF"

var dailyHeader = []string{
	"日付", "猫", "体重(kg)", "元気度", "食欲",
	"飲水量(cc)", "カリカリ(g)", "ウェット(g)", "チュール(本)", "おやつ(袋)",
	"尿回数", "便回数", "便の状態", "メモ",
}

// DailyCSV renders the subject's daily records sorted by date. Every cell
// is quoted; zero and absent values render as empty cells.
func (s *Service) DailyCSV(_ context.Context, subject string) ([]byte, error) {
	if _, ok := domain.LookupSubject(subject); !ok {
		return nil, domain.NewValidationError("cat", "unknown subject")
	}

	var records []domain.DailyRecord
	for _, rec := range s.src.Daily.Snapshot() {
		if rec.Subject == subject {
			records = append(records, rec)
		}
	}
	slices.SortStableFunc(records, func(a, b domain.DailyRecord) int {
		return strings.Compare(a.Date, b.Date)
	})

	var buf bytes.Buffer
	writeRow(&buf, dailyHeader)
	name := domain.SubjectName(subject)
	for _, r := range records {
		writeRow(&buf, []string{
			r.Date,
			name,
			numberCell(r.Weight),
			string(r.Energy),
			string(r.Appetite),
			numberCell(r.Water),
			numberCell(r.DryFood),
			numberCell(r.WetFood),
			numberCell(r.Churu),
			numberCell(r.Treats),
			countCell(r.UrineCount),
			countCell(r.FecesCount),
			string(r.FecesCondition),
			r.Memo,
		})
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeRow quotes every cell. encoding/csv only quotes cells that need it.
func writeRow(buf *bytes.Buffer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(c, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

func numberCell(n domain.Number) string {
	if d, ok := n.Decimal(); !ok || d.IsZero() {
		return ""
	}
	return n.String()
}

func countCell(c domain.Count) string {
	if c == 0 {
		return ""
	}
	return strconv.Itoa(int(c))
}
