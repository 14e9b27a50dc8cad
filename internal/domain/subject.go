package domain

// Subject is a tracked animal. Every record is scoped to exactly one subject.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var subjects = []Subject{
	{ID: "lucky", Name: "ラッキー", Icon: "🐱"},
	{ID: "mi", Name: "ミー", Icon: "🐈"},
}

// Subjects returns the registry in display order.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

// LookupSubject finds a subject by identifier.
func LookupSubject(id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// SubjectName returns the display name, falling back to the identifier.
func SubjectName(id string) string {
	if s, ok := LookupSubject(id); ok {
		return s.Name
	}
	return id
}
