package clock

import (
	"errors"
	"fmt"
)

// Messages for the semantic rules the grammar cannot express.
const (
	MsgDoubleMeridian = "Meridian cannot exist in both time components for addition. Both can't be times; one must be a duration"
	MsgMidnightPM     = "00:00pm does not make sense"
	MsgMeridian24Hour = "When entering 24 hour time, am/pm cannot be used"
)

// Field names reported by ValueError.
const (
	FieldHour   = "hour"
	FieldMinute = "minute"
)

// ParseError reports input that does not have the shape of an expression.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "Invalid input"
}

// ValueError reports a numeric component outside its range.
type ValueError struct {
	Input string // the offending time substring, e.g. "2:99"
	Field string // FieldHour or FieldMinute
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("ValueError in %s, %s out of bounds", e.Input, e.Field)
}

// LogicError reports a well-formed expression that still makes no sense.
type LogicError struct {
	Reason string
}

func (e *LogicError) Error() string {
	return e.Reason
}

// Kind classifies the outcome of an evaluation.
type Kind string

const (
	KindOK    Kind = "ok"
	KindParse Kind = "parse"
	KindValue Kind = "value"
	KindLogic Kind = "logic"
)

// KindOf returns the Kind for err. A nil error is KindOK; errors that did
// not come from this package are reported as KindParse.
func KindOf(err error) Kind {
	if err == nil {
		return KindOK
	}
	var (
		valueErr *ValueError
		logicErr *LogicError
	)
	switch {
	case errors.As(err, &valueErr):
		return KindValue
	case errors.As(err, &logicErr):
		return KindLogic
	default:
		return KindParse
	}
}

// Valid returns true if k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindOK, KindParse, KindValue, KindLogic:
		return true
	default:
		return false
	}
}
