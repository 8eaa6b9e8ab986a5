package clock

// Slot pairs a resolved component with the meridian typed after it.
type Slot struct {
	Component Component
	Meridian  Meridian
}

// Normalize applies the meridian rules to both slots, in order, and
// returns the components on a 24-hour clock.
//
// Each slot is checked against, in precedence order:
//  1. addition with a meridian on both sides
//  2. 00:00 tagged pm
//  3. an hour above 12 tagged am or pm
//
// and then adjusted: pm adds 12 to hours below 12, and 12am becomes 0.
// Both slots follow the same rules; which one is the duration is not tracked.
func Normalize(op Operator, slots [2]Slot) ([2]Component, error) {
	var out [2]Component
	bothTagged := slots[0].Meridian != MeridianNone && slots[1].Meridian != MeridianNone

	for i, s := range slots {
		c := s.Component
		switch {
		case op == OpAdd && bothTagged:
			return out, &LogicError{Reason: MsgDoubleMeridian}
		case c.Hour == 0 && c.Minute == 0 && s.Meridian == MeridianPM:
			return out, &LogicError{Reason: MsgMidnightPM}
		case c.Hour > 12 && s.Meridian != MeridianNone:
			return out, &LogicError{Reason: MsgMeridian24Hour}
		case c.Hour < 12 && s.Meridian == MeridianPM:
			c.Hour += 12
		case c.Hour == 12 && s.Meridian == MeridianAM:
			c.Hour = 0
		}
		out[i] = c
	}

	return out, nil
}
