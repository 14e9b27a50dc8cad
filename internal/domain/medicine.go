package domain

// MedicineID identifies a catalogued medicine or supplement.
type MedicineID string

// MedicineKind separates prescriptions from supplements in charts.
type MedicineKind string

const (
	KindPrescription MedicineKind = "prescription"
	KindSupplement   MedicineKind = "supplement"
)

// MedicineInfo is a catalogue entry.
type MedicineInfo struct {
	ID   MedicineID   `json:"id"`
	Name string       `json:"name"`
	Kind MedicineKind `json:"kind"`
}

var medicineCatalog = []MedicineInfo{
	{ID: "rapros", Name: "ラプロス", Kind: KindPrescription},
	{ID: "lactulose", Name: "ラクツロース", Kind: KindPrescription},
	{ID: "clavaseptin", Name: "クラバセプチン", Kind: KindPrescription},
	{ID: "vibramycin", Name: "ビブラマイシン", Kind: KindPrescription},
	{ID: "veraflox", Name: "ベラフロックス", Kind: KindPrescription},
	{ID: "appetite", Name: "食欲増進剤", Kind: KindPrescription},
	{ID: "cranberry", Name: "クランベリー", Kind: KindSupplement},
	{ID: "uroact", Name: "ウロアクト", Kind: KindSupplement},
	{ID: "utclean", Name: "UTクリーン", Kind: KindSupplement},
}

// MedicineCatalog returns every known medicine, prescriptions first.
func MedicineCatalog() []MedicineInfo {
	out := make([]MedicineInfo, len(medicineCatalog))
	copy(out, medicineCatalog)
	return out
}

// KnownMedicine reports whether id is in the catalogue.
func KnownMedicine(id MedicineID) bool {
	for _, m := range medicineCatalog {
		if m.ID == id {
			return true
		}
	}
	return false
}
