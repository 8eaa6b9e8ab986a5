package clock

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Component
		wantDays int
		want     string
	}{
		{name: "same day", a: Component{Hour: 14}, b: Component{Hour: 3, Minute: 30}, wantDays: 0, want: "05:30 PM"},
		{name: "morning", a: Component{Hour: 1}, b: Component{Minute: 45}, wantDays: 0, want: "01:45 AM"},
		{name: "noon", a: Component{Hour: 11}, b: Component{Hour: 1}, wantDays: 0, want: "12:00 PM"},
		{name: "zero", a: Component{}, b: Component{}, wantDays: 0, want: "12:00 AM"},
		{name: "last minute of the day", a: Component{Hour: 23}, b: Component{Minute: 59}, wantDays: 0, want: "11:59 PM"},
		{name: "exactly midnight next day", a: Component{Hour: 23, Minute: 59}, b: Component{Minute: 1}, wantDays: 1, want: "12:00 AM, 1 day in the future"},
		{name: "one day", a: Component{Hour: 16, Minute: 30}, b: Component{Hour: 17}, wantDays: 1, want: "09:30 AM, 1 day in the future"},
		{name: "two days", a: Component{Hour: 24}, b: Component{Hour: 24}, wantDays: 2, want: "12:00 AM, 2 days in the future"},
		{name: "two days with minutes", a: Component{Hour: 24, Minute: 59}, b: Component{Hour: 24, Minute: 59}, wantDays: 2, want: "01:58 AM, 2 days in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Add(tt.a, tt.b)
			if got := sum.Days(); got != tt.wantDays {
				t.Errorf("Days() = %d, want %d", got, tt.wantDays)
			}
			if got := sum.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdd_DaysMatchElapsedMinutes(t *testing.T) {
	for total := 0; total <= 2*(MaxHour*60+MaxMinute); total += 7 {
		a := Component{Hour: total / 2 / 60, Minute: total / 2 % 60}
		rest := total - a.Minutes()
		b := Component{Hour: rest / 60, Minute: rest % 60}

		if got, want := Add(a, b).Days(), total/1440; got != want {
			t.Fatalf("Add(%v, %v).Days() = %d, want %d", a, b, got, want)
		}
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name          string
		first, second Component
		want          string
	}{
		{name: "twelve hours", first: Component{}, second: Component{Hour: 12}, want: "12 hours and 0 minutes"},
		{name: "second operand leads", first: Component{Hour: 12}, second: Component{Hour: 15}, want: "3 hours and 0 minutes"},
		{name: "singular units", first: Component{Hour: 1, Minute: 1}, second: Component{Hour: 2, Minute: 2}, want: "1 hour and 1 minute"},
		{name: "mixed plural", first: Component{Hour: 6}, second: Component{Hour: 7, Minute: 30}, want: "1 hour and 30 minutes"},
		{name: "zero", first: Component{Hour: 5}, second: Component{Hour: 5}, want: "0 hours and 0 minutes"},
		{name: "one minute", first: Component{Hour: 10, Minute: 5}, second: Component{Hour: 10, Minute: 6}, want: "0 hours and 1 minute"},
		{name: "reversed operands wrap", first: Component{Hour: 6}, second: Component{Hour: 5, Minute: 30}, want: "23 hours and 30 minutes"},
		{name: "full day wraps to zero", first: Component{}, second: Component{Hour: 24}, want: "0 hours and 0 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtract(tt.first, tt.second).String(); got != tt.want {
				t.Errorf("Subtract(%v, %v) = %q, want %q", tt.first, tt.second, got, tt.want)
			}
		})
	}
}
