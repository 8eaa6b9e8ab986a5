package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds accepted by ResolveComponent. Hour 24 is allowed so that "24"
// can be used as a full-day duration.
const (
	MaxHour   = 24
	MaxMinute = 59
)

// Component is a time of day or a duration, as an offset from midnight.
type Component struct {
	Hour   int
	Minute int
}

// Minutes returns the total minutes since midnight.
func (c Component) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String returns the component in "HH:MM" format.
func (c Component) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ResolveComponent converts a matched time substring into a Component.
// Missing hour or minute fields default to 0.
// Returns a *ValueError naming the field that is out of range.
func ResolveComponent(s string) (Component, error) {
	hourPart, minutePart, hasColon := strings.Cut(s, ":")
	if !hasColon {
		minutePart = ""
	}

	hour, err := parseField(hourPart)
	if err != nil || hour < 0 || hour > MaxHour {
		return Component{}, &ValueError{Input: s, Field: FieldHour}
	}

	minute, err := parseField(minutePart)
	if err != nil || minute < 0 || minute > MaxMinute {
		return Component{}, &ValueError{Input: s, Field: FieldMinute}
	}

	return Component{Hour: hour, Minute: minute}, nil
}

// parseField parses a digit string, treating an empty string as 0.
func parseField(digits string) (int, error) {
	if digits == "" {
		return 0, nil
	}
	return strconv.Atoi(digits)
}
