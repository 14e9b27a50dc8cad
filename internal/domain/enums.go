package domain

// Level is an ordinal assessment used for energy and appetite.
type Level string

const (
	LevelHigh   Level = "high"
	LevelNormal Level = "normal"
	LevelLow    Level = "low"
)

func (l Level) String() string { return string(l) }

// IsValid accepts the empty level, which means "not recorded".
func (l Level) IsValid() bool {
	switch l {
	case "", LevelHigh, LevelNormal, LevelLow:
		return true
	}
	return false
}

// FecesCondition describes stool consistency.
type FecesCondition string

const (
	FecesNormal   FecesCondition = "normal"
	FecesSoft     FecesCondition = "soft"
	FecesHard     FecesCondition = "hard"
	FecesDiarrhea FecesCondition = "diarrhea"
)

func (c FecesCondition) IsValid() bool {
	switch c {
	case "", FecesNormal, FecesSoft, FecesHard, FecesDiarrhea:
		return true
	}
	return false
}

// ToiletType classifies a toilet event.
type ToiletType string

const (
	ToiletUrine ToiletType = "urine"
	ToiletFeces ToiletType = "feces"
	ToiletBoth  ToiletType = "both"
)

func (t ToiletType) String() string { return string(t) }

func (t ToiletType) IsValid() bool {
	switch t {
	case ToiletUrine, ToiletFeces, ToiletBoth:
		return true
	}
	return false
}

// CountsAsUrine reports whether the event contributes to the urine tally.
func (t ToiletType) CountsAsUrine() bool { return t == ToiletUrine || t == ToiletBoth }

// CountsAsFeces reports whether the event contributes to the feces tally.
func (t ToiletType) CountsAsFeces() bool { return t == ToiletFeces || t == ToiletBoth }

// ToiletAmount is the observed volume of a toilet event.
type ToiletAmount string

const (
	AmountNormal ToiletAmount = "normal"
	AmountMore   ToiletAmount = "more"
	AmountLess   ToiletAmount = "less"
	AmountDrops  ToiletAmount = "drops"
)

func (a ToiletAmount) IsValid() bool {
	switch a {
	case "", AmountNormal, AmountMore, AmountLess, AmountDrops:
		return true
	}
	return false
}

// MedicineTiming is a dosing slot within a day.
type MedicineTiming string

const (
	TimingMorning MedicineTiming = "morning"
	TimingNoon    MedicineTiming = "noon"
	TimingEvening MedicineTiming = "evening"
	TimingNight   MedicineTiming = "night"
)

// MedicineTimings lists every slot in day order.
var MedicineTimings = []MedicineTiming{TimingMorning, TimingNoon, TimingEvening, TimingNight}

func (t MedicineTiming) String() string { return string(t) }

func (t MedicineTiming) IsValid() bool {
	switch t {
	case TimingMorning, TimingNoon, TimingEvening, TimingNight:
		return true
	}
	return false
}

// Treatment is a procedure performed during a hospital visit.
type Treatment string

const (
	TreatmentDrip       Treatment = "drip"
	TreatmentInjection  Treatment = "injection"
	TreatmentBloodTest  Treatment = "bloodtest"
	TreatmentUrineTest  Treatment = "urinetest"
	TreatmentUltrasound Treatment = "ultrasound"
	TreatmentXRay       Treatment = "xray"
	TreatmentCatheter   Treatment = "catheter"
	TreatmentOther      Treatment = "other"
)

func (t Treatment) IsValid() bool {
	switch t {
	case TreatmentDrip, TreatmentInjection, TreatmentBloodTest, TreatmentUrineTest,
		TreatmentUltrasound, TreatmentXRay, TreatmentCatheter, TreatmentOther:
		return true
	}
	return false
}
