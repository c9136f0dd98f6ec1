package clients

import "strings"

// Filter returns the records whose name, email or job contains term,
// ignoring case. An empty or blank term returns all records. Order is
// preserved and the input is never modified.
func Filter(all []Client, term string) []Client {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return all
	}

	matched := make([]Client, 0, len(all))
	for _, c := range all {
		if matches(c, needle) {
			matched = append(matched, c)
		}
	}
	return matched
}

func matches(c Client, needle string) bool {
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(strings.ToLower(c.Job), needle)
}
