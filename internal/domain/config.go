package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Weekdays in schedule order. Every schedule write must cover all of them.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var timeOfDay = regexp.MustCompile(`^\d{2}:\d{2}$`)

type DaySchedule struct {
	Open        bool    `bson:"open" json:"open"`
	OpeningTime string  `bson:"opening_time" json:"openingTime"`
	ClosingTime string  `bson:"closing_time" json:"closingTime"`
	BreakStart  *string `bson:"break_start" json:"breakStart"`
	BreakEnd    *string `bson:"break_end" json:"breakEnd"`
}

type WeekSchedule map[string]DaySchedule

// OpeningHours is the singleton weekly schedule record.
type OpeningHours struct {
	Schedule  WeekSchedule `bson:"schedule" json:"schedule"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updatedAt"`
}

// Settings is the singleton delivery-fee record.
type Settings struct {
	DeliveryFee float64   `bson:"delivery_fee" json:"deliveryFee"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// DefaultWeekSchedule returns the schedule a fresh installation starts with.
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		"monday":    {Open: false, OpeningTime: "12:00", ClosingTime: "23:59"},
		"tuesday":   {Open: true, OpeningTime: "11:00", ClosingTime: "23:59"},
		"wednesday": {Open: true, OpeningTime: "11:00", ClosingTime: "23:59"},
		"thursday":  {Open: true, OpeningTime: "11:00", ClosingTime: "23:59"},
		"friday":    {Open: true, OpeningTime: "11:00", ClosingTime: "00:59"},
		"saturday":  {Open: true, OpeningTime: "11:00", ClosingTime: "00:59"},
		"sunday":    {Open: true, OpeningTime: "11:00", ClosingTime: "21:00"},
	}
}

// ValidateWeekSchedule checks a schedule covers all seven weekdays with
// well-formed times. Any violation rejects the whole schedule.
func ValidateWeekSchedule(schedule WeekSchedule) error {
	for _, day := range Weekdays {
		entry, ok := schedule[day]
		if !ok {
			return fmt.Errorf("missing data for %s", day)
		}

		if !timeOfDay.MatchString(entry.OpeningTime) {
			return fmt.Errorf("%s: invalid opening time %q", day, entry.OpeningTime)
		}
		if !timeOfDay.MatchString(entry.ClosingTime) {
			return fmt.Errorf("%s: invalid closing time %q", day, entry.ClosingTime)
		}
		if entry.BreakStart != nil && !timeOfDay.MatchString(*entry.BreakStart) {
			return fmt.Errorf("%s: invalid break start %q", day, *entry.BreakStart)
		}
		if entry.BreakEnd != nil && !timeOfDay.MatchString(*entry.BreakEnd) {
			return fmt.Errorf("%s: invalid break end %q", day, *entry.BreakEnd)
		}
	}

	return nil
}
