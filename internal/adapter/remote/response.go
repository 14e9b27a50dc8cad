package remote

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// The endpoint stores timestamps as text, so payloads shadow the domain
// time fields with strings and parse them leniently.

type dailyPayload struct {
	domain.DailyRecord
	UpdatedAt string `json:"updatedAt"`
}

func (p dailyPayload) record() domain.DailyRecord {
	rec := p.DailyRecord
	rec.UpdatedAt = parseStamp(p.UpdatedAt)
	return rec
}

type toiletPayload struct {
	domain.ToiletRecord
	CreatedAt string `json:"createdAt"`
}

func (p toiletPayload) record() domain.ToiletRecord {
	rec := p.ToiletRecord
	rec.CreatedAt = parseStamp(p.CreatedAt)
	return rec
}

type labTestPayload struct {
	domain.LabTestRecord
	UpdatedAt string `json:"updatedAt"`
}

type periodPayload struct {
	Date        string                                `json:"date"`
	Daily       *dailyPayload                         `json:"daily"`
	ToiletCount domain.ToiletCount                    `json:"toiletCount"`
	Medicine    map[domain.MedicineID]json.RawMessage `json:"medicine"`
	LabTest     *labTestPayload                       `json:"labtest"`
}

func (p periodPayload) day() domain.PeriodDay {
	day := domain.PeriodDay{
		Date:        p.Date,
		ToiletCount: p.ToiletCount,
	}
	if p.Daily != nil {
		rec := p.Daily.record()
		day.Daily = &rec
	}
	if len(p.Medicine) > 0 {
		day.Medicine = make(map[domain.MedicineID]bool, len(p.Medicine))
		for id, v := range p.Medicine {
			if truthy(v) {
				day.Medicine[id] = true
			}
		}
	}
	if p.LabTest != nil {
		rec := p.LabTest.LabTestRecord
		rec.UpdatedAt = parseStamp(p.LabTest.UpdatedAt)
		day.LabTest = &rec
	}
	return day
}

func parseStamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// truthy reports whether a JSON value would pass a loose boolean test:
// null, false, 0 and "" are false.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	}
	return true
}

func isObject(raw []byte) bool { return len(raw) > 0 && raw[0] == '{' }

func isArray(raw []byte) bool { return len(raw) > 0 && raw[0] == '[' }
