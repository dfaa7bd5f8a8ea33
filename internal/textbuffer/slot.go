package textbuffer

// slot holds at most one content snapshot.
// A snapshot of the empty document is still a snapshot.
type slot struct {
	text string
	set  bool
}

func (s *slot) store(text string) {
	s.text = text
	s.set = true
}

// take returns the snapshot and empties the slot.
func (s *slot) take() (string, bool) {
	if !s.set {
		return "", false
	}
	text := s.text
	*s = slot{}
	return text, true
}
