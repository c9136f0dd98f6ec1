package clients

// The helpers below never modify their input slice; each returns a new one
// so views holding the previous slice stay consistent.

// Append adds a newly created record at the end.
func Append(all []Client, c Client) []Client {
	out := make([]Client, 0, len(all)+1)
	out = append(out, all...)
	return append(out, c)
}

// Replace swaps the record with c.ID for c, keeping its position. Records
// with other identifiers are untouched. If no record matches, the result
// equals the input.
func Replace(all []Client, c Client) []Client {
	out := make([]Client, len(all))
	copy(out, all)
	for i := range out {
		if out[i].ID == c.ID {
			out[i] = c
		}
	}
	return out
}

// Remove drops every record with the given identifier.
func Remove(all []Client, id int64) []Client {
	out := make([]Client, 0, len(all))
	for _, c := range all {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// FindByID returns the record with the given identifier.
func FindByID(all []Client, id int64) (Client, bool) {
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}
