// Package clock parses and evaluates clock arithmetic expressions such as
// "2pm + 3:30" or "12am - 12pm".
//
// An expression is two time components joined by a single + or - sign.
// Each component is H, H:, :M or H:M, optionally tagged am or pm.
// Evaluation runs four stages in order: Match, ResolveComponent, Normalize
// and the arithmetic in Add or Subtract. The first failing stage ends the
// evaluation and its error is returned inside the Result.
package clock

import (
	"regexp"
	"strings"
)

// Meridian is the am/pm tag attached to a time component.
type Meridian int

const (
	MeridianNone Meridian = iota
	MeridianAM
	MeridianPM
)

// ParseMeridian converts "am" or "pm" (any case) to a Meridian.
// Anything else is MeridianNone.
func ParseMeridian(s string) Meridian {
	switch strings.ToLower(s) {
	case "am":
		return MeridianAM
	case "pm":
		return MeridianPM
	default:
		return MeridianNone
	}
}

func (m Meridian) String() string {
	switch m {
	case MeridianAM:
		return "am"
	case MeridianPM:
		return "pm"
	default:
		return ""
	}
}

// Operator is the arithmetic sign joining the two components.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
)

func (o Operator) String() string {
	if o == OpSubtract {
		return "-"
	}
	return "+"
}

// MatchedGroups holds the five pieces of a matched expression.
type MatchedGroups struct {
	Time1     string
	Meridian1 Meridian
	Operator  Operator
	Time2     string
	Meridian2 Meridian
}

// String reassembles the cleaned expression.
func (g MatchedGroups) String() string {
	return g.Time1 + g.Meridian1.String() + g.Operator.String() + g.Time2 + g.Meridian2.String()
}

// timeForm is one time component: H:M, H, H: or :M.
const timeForm = `(\d\d?:\d\d?|\d\d?|\d\d?:|:\d\d?)`

// expressionPattern groups: time1, meridian1, operator, time2, meridian2.
var expressionPattern = regexp.MustCompile(`^` + timeForm + `(am|pm)?(\+|-)` + timeForm + `(am|pm)?$`)

// Clean removes every space character and lower-cases the input.
func Clean(raw string) string {
	return strings.ToLower(strings.ReplaceAll(raw, " ", ""))
}

// Match cleans raw and splits it into its five groups.
// Returns a *ParseError unless the whole cleaned string matches.
func Match(raw string) (MatchedGroups, error) {
	m := expressionPattern.FindStringSubmatch(Clean(raw))
	if m == nil {
		return MatchedGroups{}, &ParseError{Input: raw}
	}

	op := OpAdd
	if m[3] == "-" {
		op = OpSubtract
	}

	return MatchedGroups{
		Time1:     m[1],
		Meridian1: ParseMeridian(m[2]),
		Operator:  op,
		Time2:     m[4],
		Meridian2: ParseMeridian(m[5]),
	}, nil
}
