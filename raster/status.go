package raster

// StatusKind classifies a transient banner message.
type StatusKind uint8

const (
	StatusMath StatusKind = iota
	StatusRender
)

// Status is one transient user-facing diagnostic. Remaining counts
// frames; the message is dropped when it reaches zero.
type Status struct {
	Kind      StatusKind
	Text      string
	Remaining int
}

// Statuses holds the active banner messages for one demo.
type Statuses struct {
	items []Status
}

// Push appends a message shown for the given number of frames. A
// message identical to an already-active one only refreshes its timer.
func (s *Statuses) Push(kind StatusKind, text string, frames int) {
	for i := range s.items {
		if s.items[i].Kind == kind && s.items[i].Text == text {
			if s.items[i].Remaining < frames {
				s.items[i].Remaining = frames
			}
			return
		}
	}
	s.items = append(s.items, Status{Kind: kind, Text: text, Remaining: frames})
}

// Tick decrements each timer once per frame and drops expired messages.
func (s *Statuses) Tick() {
	out := s.items[:0]
	for _, it := range s.items {
		it.Remaining--
		if it.Remaining > 0 {
			out = append(out, it)
		}
	}
	s.items = out
}

// Active returns the live messages, newest last. The slice is owned by
// the collection and valid until the next Push or Tick.
func (s *Statuses) Active() []Status { return s.items }
