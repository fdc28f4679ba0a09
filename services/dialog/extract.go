package dialog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// weekdayNames is indexed by time.Weekday (Sunday = 0).
var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DayDate pairs a canonical weekday name with its display label. For an
// explicit weekday both are the weekday name; for relative references the
// label is "Today" or "Tomorrow".
type DayDate struct {
	Day  string
	Date string
}

func titleDay(d string) string {
	return strings.ToUpper(d[:1]) + d[1:]
}

// ExtractDay scans a turn for a weekday reference. An explicit weekday name
// wins over "today", which wins over "tomorrow"; relative references are
// resolved against now.
func ExtractDay(input string, now time.Time) (DayDate, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))

	for _, d := range weekdayNames {
		if strings.Contains(lower, d) {
			return DayDate{Day: titleDay(d), Date: titleDay(d)}, true
		}
	}

	if strings.Contains(lower, "today") {
		name := titleDay(weekdayNames[now.Weekday()])
		return DayDate{Day: name, Date: "Today"}, true
	}
	if strings.Contains(lower, "tomorrow") {
		name := titleDay(weekdayNames[now.AddDate(0, 0, 1).Weekday()])
		return DayDate{Day: name, Date: "Tomorrow"}, true
	}

	return DayDate{}, false
}

var timePattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm|AM|PM)?`)

// ExtractTime finds the first clock-like reference and normalizes it to
// "H:MM AM/PM". Explicit AM/PM is honored; with no meridian, hours below 6
// are taken as evening (dinner bias) and minutes default to "00".
func ExtractTime(input string) (string, bool) {
	m := timePattern.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}

	hour, _ := strconv.Atoi(m[1])
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}
	meridian := strings.ToUpper(m[3])

	switch {
	case meridian == "PM" && hour < 12:
		hour += 12
	case meridian == "AM" && hour == 12:
		hour = 0
	case meridian == "" && hour < 6:
		hour += 12
	}

	display := hour
	switch {
	case display > 12:
		display -= 12
	case display == 0:
		display = 12
	}

	if meridian == "" {
		if hour >= 12 {
			meridian = "PM"
		} else {
			meridian = "AM"
		}
	}

	return fmt.Sprintf("%d:%s %s", display, minutes, meridian), true
}

var numberPattern = regexp.MustCompile(`\d+`)

// ExtractGuestCount returns the first integer in the turn that falls in the
// bookable range [1,20]. Out-of-range numbers are skipped.
func ExtractGuestCount(input string) (int, bool) {
	for _, m := range numberPattern.FindAllString(input, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n >= 1 && n <= 20 {
			return n, true
		}
	}
	return 0, false
}

// namePattern wants a lead-in phrase followed by one or two capitalized
// words. The lead-ins are case-insensitive but the name itself must be
// capitalized, which keeps phrases like "for dinner" from matching.
var namePattern = regexp.MustCompile(`(?:[Ff]or|[Nn]ame\s+is|[Nn]ame:?|[Ii]'?m)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)

// ExtractName applies the lead-in heuristic. It misses valid names without
// a lead-in and can false-positive on capitalized common words; weekday and
// relative-day words are filtered out since "for Friday" is a date, not a
// name.
func ExtractName(input string) (string, bool) {
	m := namePattern.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	first := strings.ToLower(strings.Fields(name)[0])
	if first == "today" || first == "tomorrow" {
		return "", false
	}
	for _, d := range weekdayNames {
		if first == d {
			return "", false
		}
	}
	return name, true
}

var phonePattern = regexp.MustCompile(`[\d\s\-+()]{7,}`)

// ExtractPhone finds the first phone-like run of at least 7 digits, spaces,
// hyphens, parentheses, or plus signs.
func ExtractPhone(input string) (string, bool) {
	m := phonePattern.FindString(input)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// BookingDetails is the composite result of running every extractor over
// one turn. Zero values mean the extractor found nothing.
type BookingDetails struct {
	Day    DayDate
	HasDay bool
	Time   string
	Guests int
	Name   string
	Phone  string
}

// HasAny reports whether at least one field was extracted.
func (d BookingDetails) HasAny() bool {
	return d.HasDay || d.Time != "" || d.Guests != 0 || d.Name != "" || d.Phone != ""
}

// ExtractBookingDetails runs all extractors so the engine can absorb
// several fields from a single free-text turn.
func ExtractBookingDetails(input string, now time.Time) BookingDetails {
	var d BookingDetails
	d.Day, d.HasDay = ExtractDay(input, now)
	d.Time, _ = ExtractTime(input)
	d.Guests, _ = ExtractGuestCount(input)
	d.Name, _ = ExtractName(input)
	d.Phone, _ = ExtractPhone(input)
	return d
}
