package models

// AvailableSlot is one bookable interval, formatted for the booking UI:
// tenant-local "HH:MM" bounds plus date-anchored ISO instants.
type AvailableSlot struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}

// BusinessHoursView is the effective hours echoed back with a day's slots.
type BusinessHoursView struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

// DayAvailability is the full availability response for one date.
type DayAvailability struct {
	AvailableSlots []AvailableSlot   `json:"available_slots"`
	BusinessHours  BusinessHoursView `json:"business_hours"`
	Date           string            `json:"date"`
	IsExceptionDay bool              `json:"is_exception_day"`
}
