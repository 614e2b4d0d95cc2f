// Package format holds the display conventions shared by receipts and
// reports: timestamps and shortened identifiers.
package format

import "time"

// Stamp renders a timestamp in the venue's display convention,
// DD/MM/YYYY HH:mm.
func Stamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// ShortID returns the first 8 characters of an identifier. Shorter
// identifiers are returned unchanged.
func ShortID(id string) string {
	r := []rune(id)
	if len(r) <= 8 {
		return id
	}
	return string(r[:8])
}
