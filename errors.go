package vgpu

import "fmt"

// setError records the first sticky error set since the last consumption.
// Once set, later state-mutating calls in the same batch are expected to
// no-op (callers check GetError before proceeding); this call itself
// never overwrites an already-pending error.
func (p *Pipeline) setError(e ErrorState) {
	if p.state.Error == NO_ERROR {
		p.state.Error = e
	}
}

// GetError returns and clears the sticky error state.
func (p *Pipeline) GetError() ErrorState {
	e := p.state.Error
	p.state.Error = NO_ERROR
	return e
}

// opError wraps a setup-time validation failure as both a Go error
// (for the idiomatic constructor-return path) and the sticky ErrorState
// a façade would see from GetError.
type opError struct {
	state ErrorState
	msg   string
}

func (e *opError) Error() string { return fmt.Sprintf("vgpu: %s", e.msg) }

// newOpError records state on the pipeline's sticky error field and
// returns the matching Go error, so a façade polling GetError and a
// caller checking the returned error see the same failure.
func (p *Pipeline) newOpError(state ErrorState, format string, args ...any) error {
	p.setError(state)
	return &opError{state: state, msg: fmt.Sprintf(format, args...)}
}
