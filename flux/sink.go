package flux

// Sink emits one flux symbol as a WRITE pulse. GATE must already be
// asserted by the caller before the first Emit of a field and must stay
// asserted until the caller de-asserts it after the last.
type Sink interface {
	// Emit drives one WRITE pulse of sym's width. It returns once the
	// full symbol period has elapsed, matching the timing contract of
	// spec.md §4.2: total elapsed time from one Emit call to the next
	// equals T_short, T_med or T_long within one cycle.
	Emit(sym Symbol)
}

// SliceSink records every emitted symbol in order, for tests that check
// what the encoder handed to the pulse emitter without driving real
// hardware.
type SliceSink struct {
	Symbols []Symbol
}

func (s *SliceSink) Emit(sym Symbol) {
	s.Symbols = append(s.Symbols, sym)
}
