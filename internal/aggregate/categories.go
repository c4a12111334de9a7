package aggregate

// Categories classifies models as monolingual or multilingual.
type Categories interface {
	IsMonolingual(displayName string) bool
}

// StaticCategories is a fixed set of monolingual model display names.
type StaticCategories map[string]struct{}

// NewStaticCategories builds the set from names.
func NewStaticCategories(names []string) StaticCategories {
	s := make(StaticCategories, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s StaticCategories) IsMonolingual(displayName string) bool {
	_, ok := s[displayName]
	return ok
}

// Category names, as printed in section headers.
const (
	Monolingual  = "Monolingual"
	Multilingual = "Multilingual"
)

// CategoryOf returns the section name for a model.
func CategoryOf(cats Categories, displayName string) string {
	if cats.IsMonolingual(displayName) {
		return Monolingual
	}
	return Multilingual
}
