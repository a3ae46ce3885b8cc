package property

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Device adapters format numbers with the controller host's locale, so
// values read back may carry a comma decimal separator ("2,5" for 2.5).
// The parsers here accept both forms; everything SPIM Core writes uses
// the dot form.

// parseFloatTolerant parses a float accepting both "." and "," as the
// decimal separator. Surrounding whitespace is ignored.
func parseFloatTolerant(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrParseFailed)
	}

	// Comma decimal separator: only when it is the sole separator present.
	if strings.Count(trimmed, ",") == 1 && !strings.Contains(trimmed, ".") {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParseFailed, s)
	}
	return f, nil
}

// parseIntTolerant parses an integer, falling back to tolerant float
// parsing with rounding for values the runtime formatted as decimals
// ("40.0", "40,0").
func parseIntTolerant(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, nil
	}

	f, err := parseFloatTolerant(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrParseFailed, s)
	}
	return int(math.Round(f)), nil
}

// formatFloat renders a float the way the runtime expects: dot decimal
// separator, shortest representation that round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
