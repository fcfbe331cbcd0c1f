package histquote

import (
	"net/url"
	"strconv"
	"strings"
)

// IsURL returns true if 'str' is a valid URL.
func IsURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// RangeLabel turns a chart range ("5y", "6m", "ytd") into the
// text shown to the user ("5 year", "6 month", "year-to-date").
func RangeLabel(rng string) string {
	switch strings.ToLower(rng) {
	case "ytd":
		return "year-to-date"
	case "max":
		return "full"
	}
	if len(rng) < 2 {
		return rng
	}
	n, err := strconv.Atoi(rng[:len(rng)-1])
	if err != nil || n <= 0 {
		return rng
	}
	units := map[byte]string{'y': "year", 'm': "month", 'd': "day", 'w': "week"}
	unit, ok := units[rng[len(rng)-1]|0x20]
	if !ok {
		return rng
	}
	return strconv.Itoa(n) + " " + unit
}
