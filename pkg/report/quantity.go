package report

import (
	"strconv"
	"strings"
)

const (
	milliCPUBase = 1000
	bytesPerMi   = 1024 * 1024
	mebiPerGibi  = 1024
)

// CPUMillicores converts a CPU quantity to millicores. It is total over
// its input domain: NA, empty and unparseable values all yield 0.
//
// A string carrying an "m" anywhere in its lowercased form is read as a
// millicore magnitude; the check runs against the original string, not
// the stripped one. Everything else, including non-string numeric input,
// is whole cores.
func CPUMillicores(v any) float64 {
	s, isString := v.(string)
	if !isString {
		n, ok := toFloat(v)
		if !ok {
			return 0
		}
		return n * milliCPUBase
	}

	if s == NA {
		return 0
	}
	num, ok := numericPart(s)
	if !ok {
		return 0
	}
	if strings.Contains(strings.ToLower(s), "m") {
		return num
	}
	return num * milliCPUBase
}

// MemoryMebibytes converts a memory quantity to mebibytes. Binary unit
// markers are checked in priority order Gi, Mi, Ki (case-insensitive);
// a string without any of them, and any non-string numeric input, is a
// raw byte count. Unparseable values yield 0, never an error.
func MemoryMebibytes(v any) float64 {
	s, isString := v.(string)
	if !isString {
		n, ok := toFloat(v)
		if !ok {
			return 0
		}
		return n / bytesPerMi
	}

	if s == NA {
		return 0
	}
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "GI"):
		num, _ := numericPart(upper)
		return num * 1024
	case strings.Contains(upper, "MI"):
		num, _ := numericPart(upper)
		return num
	case strings.Contains(upper, "KI"):
		num, _ := numericPart(upper)
		return num / 1024
	default:
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return num / bytesPerMi
	}
}

// numericPart strips every rune that is not a digit, '.' or '-' and
// parses the remainder. Reports false when nothing parseable remains.
func numericPart(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	num, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
