package tooltip

import "strings"

// Locale carries the unit words appended to head-count values.
type Locale struct {
	Name         string
	Participants string
	Persons      string
}

var (
	LocaleES = Locale{Name: "es", Participants: "participantes", Persons: "persona(s)"}
	LocaleEN = Locale{Name: "en", Participants: "participants", Persons: "person(s)"}
)

// LocaleByName resolves "es" or "en" (case-insensitive, region suffix ignored).
func LocaleByName(name string) (Locale, bool) {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(name)), "-")
	base, _, _ = strings.Cut(base, "_")
	switch base {
	case "es":
		return LocaleES, true
	case "en":
		return LocaleEN, true
	}
	return Locale{}, false
}
