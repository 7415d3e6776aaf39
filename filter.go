package ask

import "strings"

// filterChoices returns the choices whose label contains filter,
// case-insensitively. Labels that start with the filter rank before labels
// that merely contain it; within each group the original order is preserved.
//
// An empty filter returns the full list. So does a filter that matches
// nothing: a user who types themselves into a dead end sees the unfiltered
// list again instead of an empty screen.
func filterChoices(choices []Choice, filter string) []Choice {
	if filter == "" {
		return append([]Choice(nil), choices...)
	}

	q := strings.ToLower(filter)
	var starts, contains []Choice
	for _, c := range choices {
		name := strings.ToLower(c.Name)
		switch {
		case strings.HasPrefix(name, q):
			starts = append(starts, c)
		case strings.Contains(name, q):
			contains = append(contains, c)
		}
	}

	matched := append(starts, contains...)
	if len(matched) == 0 {
		return append([]Choice(nil), choices...)
	}
	return matched
}
