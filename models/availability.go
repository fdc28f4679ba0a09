package models

// SlotStatus is the capacity tier of a time slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotFull      SlotStatus = "full"
)

// TableAvailability is the remaining table count for one standard table size.
type TableAvailability struct {
	Size      int `json:"size"`
	Available int `json:"available"`
}

// TimeSlot is one bookable time on a day's schedule.
type TimeSlot struct {
	Time   string              `json:"time"` // "H:MM AM/PM"
	Status SlotStatus          `json:"status"`
	Tables []TableAvailability `json:"tables"`
}

// DaySchedule is the lunch and dinner slots for one weekday.
type DaySchedule struct {
	Day    string     `json:"day"`
	Lunch  []TimeSlot `json:"lunch"`
	Dinner []TimeSlot `json:"dinner"`
}

// AvailabilityResult is the transient answer to a capacity query. When no
// slot fits, Alternatives carries other times on the same day with room for
// the requested party; when there are none, Message carries a human-readable
// explanation instead.
type AvailabilityResult struct {
	Available    bool      `json:"available"`
	Slot         *TimeSlot `json:"slot,omitempty"`
	Alternatives []string  `json:"alternatives,omitempty"`
	Message      string    `json:"message,omitempty"`
}
