package dogs

import (
	"strconv"
	"strings"
)

// AgeInYears convierte "2 years", "5 months", "3 weeks", "10 days" a años
// enteros (truncando). Devuelve false si el texto no se puede interpretar.
func AgeInYears(text string) (int, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return 0, false
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 0 {
		return 0, false
	}

	unit := strings.ToLower(parts[1])
	switch {
	case strings.Contains(unit, "year"):
		return n, true
	case strings.Contains(unit, "month"):
		return n / 12, true
	case strings.Contains(unit, "week"):
		return n / 52, true
	case strings.Contains(unit, "day"):
		return n / 365, true
	default:
		return 0, false
	}
}
