package restaurant

import (
	"strings"

	"lamaison/models"
)

// AvailabilityTable is the read-only weekly schedule of time slots with
// per-table-size remaining capacity. Queries never mutate it; a confirmed
// reservation is conversational only and does not decrement capacity.
type AvailabilityTable struct {
	days []models.DaySchedule
}

// NewAvailabilityTable wraps a weekly schedule. Pass DefaultSchedule() for
// the built-in data.
func NewAvailabilityTable(days []models.DaySchedule) *AvailabilityTable {
	return &AvailabilityTable{days: days}
}

// TableSizeFor buckets a party size into the smallest standard table size
// that fits. Parties above 8 still map to an 8-top; larger groups need a
// phone call.
func TableSizeFor(guests int) int {
	switch {
	case guests <= 2:
		return 2
	case guests <= 4:
		return 4
	case guests <= 6:
		return 6
	default:
		return 8
	}
}

// Check answers a capacity query for a weekday, a normalized "H:MM AM/PM"
// time, and a party size. An unknown day yields a guidance message; a known
// day with no capacity yields alternative times, or a no-availability
// message when the whole day is saturated.
func (t *AvailabilityTable) Check(day, timeStr string, guests int) models.AvailabilityResult {
	schedule, ok := t.scheduleFor(day)
	if !ok {
		return models.AvailabilityResult{Message: "Please provide a valid day (Monday-Sunday)."}
	}

	allSlots := append(append([]models.TimeSlot{}, schedule.Lunch...), schedule.Dinner...)
	bucket := TableSizeFor(guests)

	var requested *models.TimeSlot
	for i := range allSlots {
		if strings.EqualFold(allSlots[i].Time, timeStr) {
			requested = &allSlots[i]
			break
		}
	}

	if requested != nil {
		if slotHasRoom(*requested, bucket) {
			s := *requested
			return models.AvailabilityResult{Available: true, Slot: &s}
		}
		alts := alternativeTimes(allSlots, bucket, requested.Time)
		if len(alts) == 0 {
			return models.AvailabilityResult{Message: "No tables available for that day. Please try another day."}
		}
		return models.AvailabilityResult{Alternatives: alts}
	}

	alts := alternativeTimes(allSlots, bucket, "")
	if len(alts) == 0 {
		return models.AvailabilityResult{Message: "No tables available for that day."}
	}
	return models.AvailabilityResult{Alternatives: alts}
}

func (t *AvailabilityTable) scheduleFor(day string) (models.DaySchedule, bool) {
	for _, d := range t.days {
		if strings.EqualFold(d.Day, day) {
			return d, true
		}
	}
	return models.DaySchedule{}, false
}

// slotHasRoom reports whether any table at least as large as the bucket has
// remaining capacity.
func slotHasRoom(s models.TimeSlot, bucket int) bool {
	for _, tbl := range s.Tables {
		if tbl.Size >= bucket && tbl.Available > 0 {
			return true
		}
	}
	return false
}

func alternativeTimes(slots []models.TimeSlot, bucket int, exclude string) []string {
	var alts []string
	for _, s := range slots {
		if s.Time == exclude {
			continue
		}
		if slotHasRoom(s, bucket) {
			alts = append(alts, s.Time)
		}
	}
	return alts
}
