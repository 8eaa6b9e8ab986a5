package clock

// Result is the outcome of one evaluation: either Value or Err is set.
type Result struct {
	Input  string
	Value  string
	Err    error
	Groups MatchedGroups
	Times  [2]Component // normalized; zero unless the expression got past Normalize
}

// OK returns true if the evaluation produced a value.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the classification of the result.
func (r Result) Kind() Kind {
	return KindOf(r.Err)
}

// String returns the value, or the error message on failure.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Value
}

// Evaluate parses and computes expression. It never panics and never
// returns a partial value: the first failing stage sets Err.
func Evaluate(expression string) Result {
	res := Result{Input: expression}

	groups, err := Match(expression)
	if err != nil {
		res.Err = err
		return res
	}
	res.Groups = groups

	var slots [2]Slot
	for i, part := range [2]struct {
		time     string
		meridian Meridian
	}{
		{groups.Time1, groups.Meridian1},
		{groups.Time2, groups.Meridian2},
	} {
		c, err := ResolveComponent(part.time)
		if err != nil {
			res.Err = err
			return res
		}
		slots[i] = Slot{Component: c, Meridian: part.meridian}
	}

	times, err := Normalize(groups.Operator, slots)
	if err != nil {
		res.Err = err
		return res
	}
	res.Times = times

	switch groups.Operator {
	case OpSubtract:
		res.Value = Subtract(times[0], times[1]).String()
	default:
		res.Value = Add(times[0], times[1]).String()
	}
	return res
}
