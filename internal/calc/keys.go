package calc

// Step reports what one key did to the calculator.
type Step struct {
	Consumed bool
	Resolved bool   // an operation was applied
	Result   Result // valid when Resolved
}

// HandleKey applies one keyboard key. Keys use Bubble Tea's names:
// "enter", "esc", "backspace"; "=" is an alias for enter.
func (c *Calculator) HandleKey(key string) Step {
	switch key {
	case "enter", "=":
		r, ok := c.Calculate()
		return Step{Consumed: true, Resolved: ok, Result: r}
	case "esc":
		c.ClearAll()
		return Step{Consumed: true}
	case "backspace":
		c.Backspace()
		return Step{Consumed: true}
	}

	runes := []rune(key)
	if len(runes) != 1 {
		return Step{}
	}
	r := runes[0]
	if (r >= '0' && r <= '9') || r == '.' {
		c.Digit(r)
		return Step{Consumed: true}
	}
	if op, ok := ParseOperator(r); ok {
		res, resolved := c.ChooseOperator(op)
		return Step{Consumed: true, Resolved: resolved, Result: res}
	}
	return Step{}
}

// Feed applies a sequence of keys and collects every resolved operation.
// Words other than the named keys are split into characters, so "12+3=" and
// "12", "+", "3", "enter" are the same input. Unknown keys are skipped.
func (c *Calculator) Feed(keys ...string) []Result {
	var out []Result
	apply := func(k string) {
		if st := c.HandleKey(k); st.Resolved {
			out = append(out, st.Result)
		}
	}
	for _, k := range keys {
		switch k {
		case "enter", "esc", "backspace":
			apply(k)
			continue
		}
		for _, r := range k {
			apply(string(r))
		}
	}
	return out
}
