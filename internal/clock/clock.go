// Package clock formats the UTC and local time readouts shown in the header.
package clock

import (
	"strings"
	"time"
)

const (
	// UTCLayout is the 24-hour, zero-padded, second-resolution UTC readout.
	UTCLayout = "15:04:05"

	layout24h = "15:04:05"
	layout12h = "3:04:05 PM"
)

// Territories whose default time-of-day display is the 12-hour clock.
var twelveHourTerritories = map[string]struct{}{
	"US": {}, "CA": {}, "AU": {}, "NZ": {}, "PH": {}, "IN": {},
	"PK": {}, "EG": {}, "SA": {}, "CO": {}, "MX": {},
}

// FormatUTC renders t as HH:MM:SS in UTC.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(UTCLayout)
}

// FormatLocal renders t in the process local zone using layout.
func FormatLocal(t time.Time, layout string) string {
	if strings.TrimSpace(layout) == "" {
		layout = layout24h
	}
	return t.In(time.Local).Format(layout)
}

// LocaleLayout picks the default local time layout from the POSIX locale
// variables, consulted in LC_ALL, LC_TIME, LANG order. getenv is usually
// os.Getenv.
func LocaleLayout(getenv func(string) string) string {
	if getenv == nil {
		return layout24h
	}
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := strings.TrimSpace(getenv(key))
		if value == "" {
			continue
		}
		if territory(value) == "" {
			return layout24h
		}
		if _, ok := twelveHourTerritories[territory(value)]; ok {
			return layout12h
		}
		return layout24h
	}
	return layout24h
}

// territory extracts "US" from values like "en_US.UTF-8@euro".
func territory(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	_, terr, ok := strings.Cut(locale, "_")
	if !ok {
		return ""
	}
	return strings.ToUpper(terr)
}
