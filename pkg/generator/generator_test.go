package generator

// stubGenerator is a test double that returns a fixed value and counts
// how many times it has been pulled, so tests can assert the
// pull-child-at-most-once invariant.
type stubGenerator struct {
	Base
	value      float32
	pullCount  int
	noteOnHits int
}

func newStub(value float32) *stubGenerator {
	return &stubGenerator{Base: NewBase(), value: value}
}

func (s *stubGenerator) GenerateSample(sampleRate float64) float32 {
	s.pullCount++
	return s.value
}

func (s *stubGenerator) NoteOn(velocity float32) {
	s.noteOnHits++
}

var _ Generator = (*stubGenerator)(nil)
