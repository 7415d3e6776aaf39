package ask

// Choice is one selectable entry: a display label and an opaque result value.
//
// Callers may supply choices as bare strings via Choices, in which case the
// label doubles as the value, or as explicit label/value pairs. All choices
// are normalized at the boundary before they enter the prompt loop.
type Choice struct {
	Name  string
	Value any
}

// Choices builds a choice list from plain strings. Each name becomes both
// the label and the value, mirroring string-only option lists.
func Choices(names ...string) []Choice {
	out := make([]Choice, 0, len(names))
	for _, name := range names {
		out = append(out, Choice{Name: name, Value: name})
	}
	return out
}

// NormalizeChoices discards empty entries and fills missing values with the
// label. The returned slice preserves the original order; that order is the
// canonical tie-break for all later filtering.
func NormalizeChoices(choices []Choice) []Choice {
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if c.Name == "" {
			continue
		}
		if c.Value == nil {
			c.Value = c.Name
		}
		out = append(out, c)
	}
	return out
}
