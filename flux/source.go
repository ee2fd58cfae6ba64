package flux

// Source yields classified flux symbols one at a time. The sync detector
// and byte decoder consume a Source and never know whether it is backed
// by real hardware or a canned test sequence.
type Source interface {
	// Next blocks until the next complete flux symbol is available and
	// returns it. If the INDEX pulse fires before a symbol completes —
	// one full revolution elapsed without the caller getting what it
	// was waiting for — ok is false and sym is the zero value.
	Next() (sym Symbol, ok bool)
}

// SliceSource replays a fixed symbol sequence, optionally firing INDEX
// (reporting ok=false) once a configured position is reached. It is used
// by package mfm's tests in place of real hardware; it
// is exported because the drive package's tests build synthetic flux
// streams the same way spec.md §8's end-to-end scenarios describe.
type SliceSource struct {
	symbols []Symbol
	pos     int

	// IndexAt, if >= 0, is the symbol index at which INDEX is considered
	// to have fired: Next returns ok=false once pos reaches it, instead
	// of yielding symbols[IndexAt]. A negative value means INDEX never
	// fires (the source is simply exhausted after the last symbol).
	IndexAt int
}

// NewSliceSource returns a Source that replays symbols in order and never
// fires INDEX.
func NewSliceSource(symbols []Symbol) *SliceSource {
	return &SliceSource{symbols: symbols, IndexAt: -1}
}

func (s *SliceSource) Next() (Symbol, bool) {
	if s.IndexAt >= 0 && s.pos >= s.IndexAt {
		return 0, false
	}
	if s.pos >= len(s.symbols) {
		return 0, false
	}
	sym := s.symbols[s.pos]
	s.pos++
	return sym, true
}

// Pos reports how many symbols have been consumed so far, for tests that
// assert scan_for_sync stopped at an exact offset (spec.md §8's "sync
// idempotence" property).
func (s *SliceSource) Pos() int {
	return s.pos
}
