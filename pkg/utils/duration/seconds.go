// ABOUTME: Parses media time offsets such as 90, 1m30s or 01:30 into seconds
// ABOUTME: Used for the start position of video links

package duration

import (
	"regexp"
	"strconv"
	"strings"
)

var unitPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?)?$`)

// Seconds converts an offset to whole seconds. It accepts plain seconds,
// h/m/s unit strings and MM:SS or HH:MM:SS clock strings.
func Seconds(raw string) (int, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}

	if strings.Contains(raw, ":") {
		return clockSeconds(raw)
	}

	m := unitPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	return sum([]string{m[1], m[2], m[3]})
}

func clockSeconds(raw string) (int, bool) {
	parts := strings.Split(raw, ":")
	switch len(parts) {
	case 2:
		return sum([]string{"", parts[0], parts[1]})
	case 3:
		return sum(parts)
	}
	return 0, false
}

// sum adds hours, minutes and seconds; empty parts count as zero
func sum(parts []string) (int, bool) {
	total := 0
	for i, mult := range []int{3600, 60, 1} {
		if parts[i] == "" {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, false
		}
		total += n * mult
	}
	return total, true
}
