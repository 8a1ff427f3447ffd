package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Sequence replays fixed numbers, modulo n
// It is meant for tests that need predictable output.
type Sequence struct {
	Values []int
	next   int
}

// Intn returns the next value in the sequence, modulo n
func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}

	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}
