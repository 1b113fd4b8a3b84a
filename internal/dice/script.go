package dice

// Script is a deterministic Source that replays fixed sequences.
//
// Rolls feeds Between and Picks feeds Pick, each in order. When a sequence
// runs out its final value repeats; an empty sequence yields lo for Between
// and 0 for Pick. Rolls are returned verbatim, even outside [lo, hi], so a
// test can force any damage figure. Picks are reduced modulo n, so -1
// selects the last item.
type Script struct {
	Rolls []int
	Picks []int

	rollPos int
	pickPos int
}

// Between returns the next scripted roll.
// The range is still checked, so empty ranges fail exactly as with Rand.
func (s *Script) Between(lo, hi int) (int, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	if len(s.Rolls) == 0 {
		return lo, nil
	}
	v := s.Rolls[min(s.rollPos, len(s.Rolls)-1)]
	s.rollPos++
	return v, nil
}

// Pick returns the next scripted index.
func (s *Script) Pick(n int) int {
	if len(s.Picks) == 0 {
		return 0
	}
	v := s.Picks[min(s.pickPos, len(s.Picks)-1)]
	s.pickPos++
	return ((v % n) + n) % n
}

// Consumed reports how many rolls and picks have been drawn.
func (s *Script) Consumed() (rolls, picks int) {
	return s.rollPos, s.pickPos
}
