package timeline

import (
	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Charts holds one value per day for every chart. A nil value is a gap.
type Charts struct {
	Dates  []string `json:"dates"`
	Labels []string `json:"labels"`

	Weight  []*float64 `json:"weight"`
	Urine   []*float64 `json:"urine"`
	DryFood []*float64 `json:"dryFood"`
	WetFood []*float64 `json:"wetFood"`
	Churu   []*float64 `json:"churu"`
	Water   []*float64 `json:"water"`
	Drip    []*float64 `json:"drip"`

	Creatinine   []*float64 `json:"creatinine"`
	BUN          []*float64 `json:"bun"`
	UrineProtein []*float64 `json:"urineProtein"`
	UrineBlood   []*float64 `json:"urineBlood"`
	UrineSG      []*float64 `json:"urineSg"`
}

// Series computes the chart values of the period. Zero and negative values
// become gaps. The urine count prefers the toilet log over the daily
// record.
func Series(days []domain.PeriodDay) Charts {
	n := len(days)
	c := Charts{
		Dates:        make([]string, n),
		Labels:       make([]string, n),
		Weight:       make([]*float64, n),
		Urine:        make([]*float64, n),
		DryFood:      make([]*float64, n),
		WetFood:      make([]*float64, n),
		Churu:        make([]*float64, n),
		Water:        make([]*float64, n),
		Drip:         make([]*float64, n),
		Creatinine:   make([]*float64, n),
		BUN:          make([]*float64, n),
		UrineProtein: make([]*float64, n),
		UrineBlood:   make([]*float64, n),
		UrineSG:      make([]*float64, n),
	}

	for i, d := range days {
		c.Dates[i] = d.Date
		c.Labels[i] = domain.ShortDate(d.Date)

		urine := d.ToiletCount.Urine
		if daily := d.Daily; daily != nil {
			c.Weight[i] = positive(daily.Weight)
			c.DryFood[i] = positive(daily.DryFood)
			c.WetFood[i] = positive(daily.WetFood)
			c.Churu[i] = positive(daily.Churu)
			c.Water[i] = positive(daily.Water)
			c.Drip[i] = positive(daily.Drip)
			if urine == 0 {
				urine = daily.UrineCount
			}
		}
		if urine > 0 {
			v := float64(urine)
			c.Urine[i] = &v
		}

		if lab := d.LabTest; lab != nil {
			c.Creatinine[i] = positive(lab.Creatinine)
			c.BUN[i] = positive(lab.BUN)
			c.UrineProtein[i] = positive(lab.UrineProtein)
			c.UrineBlood[i] = positive(lab.UrineBlood)
			c.UrineSG[i] = positive(lab.UrineSG)
		}
	}

	return c
}

func positive(n domain.Number) *float64 {
	if !n.Positive() {
		return nil
	}
	v := n.Float64()
	return &v
}
