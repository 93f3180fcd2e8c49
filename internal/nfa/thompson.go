package nfa

// links adds ε-transitions for each (from, to) pair in order.
func (a *Arena) links(pairs ...StateID) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := a.Epsilon(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Atomic builds the fragment for a single character c.
func (a *Arena) Atomic(c byte) (Fragment, error) {
	if c == 0 {
		return Fragment{}, &InternalError{Op: "Atomic", State: InvalidState, Err: ErrNullCharacter}
	}
	f := Fragment{Start: a.NewState(), Terminate: a.NewState()}
	if err := a.AddTransition(f.Start, Char, c, f.Terminate); err != nil {
		return Fragment{}, err
	}
	return f, nil
}

// Concat builds AB. No states are allocated.
func (a *Arena) Concat(x, y Fragment) (Fragment, error) {
	if err := a.links(x.Terminate, y.Start); err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: x.Start, Terminate: y.Terminate}, nil
}

// Alternate builds A|B.
func (a *Arena) Alternate(x, y Fragment) (Fragment, error) {
	f := Fragment{Start: a.NewState(), Terminate: a.NewState()}
	err := a.links(
		f.Start, x.Start,
		f.Start, y.Start,
		x.Terminate, f.Terminate,
		y.Terminate, f.Terminate,
	)
	if err != nil {
		return Fragment{}, err
	}
	return f, nil
}

// Optional builds A? as a new start that either enters A or jumps
// straight to A's terminate.
func (a *Arena) Optional(x Fragment) (Fragment, error) {
	f := Fragment{Start: a.NewState(), Terminate: x.Terminate}
	if err := a.links(f.Start, x.Start, f.Start, x.Terminate); err != nil {
		return Fragment{}, err
	}
	return f, nil
}

// Kleene builds A*.
func (a *Arena) Kleene(x Fragment) (Fragment, error) {
	f := Fragment{Start: a.NewState(), Terminate: a.NewState()}
	err := a.links(
		x.Terminate, f.Start,
		f.Start, x.Start,
		f.Start, f.Terminate,
	)
	if err != nil {
		return Fragment{}, err
	}
	return f, nil
}

// Positive builds A+ (one or more A).
func (a *Arena) Positive(x Fragment) (Fragment, error) {
	f := Fragment{Start: a.NewState(), Terminate: a.NewState()}
	err := a.links(
		f.Start, x.Start,
		x.Terminate, f.Start,
		x.Terminate, f.Terminate,
	)
	if err != nil {
		return Fragment{}, err
	}
	return f, nil
}
