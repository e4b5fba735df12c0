package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/calendar"
)

// Date is a calendar date without a clock, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: calendar.DateOf(t)}
}

func ParseDate(s string) (Date, error) {
	t, err := calendar.ParseISODate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return calendar.FormatISODate(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}
