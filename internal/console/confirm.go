package console

import "github.com/interiorpro/adminconsole/internal/domain"

// Confirm is one pending delete confirmation, bound to a single
// product id. It stays open until the operator chooses confirm or
// cancel; there is no default action on timeout.
type Confirm struct {
	ID   domain.ID
	Name string
}

// ConfirmStack holds the open delete confirmations. Issuing delete on
// several products before answering any yields one independent entry
// per product, each acting only on its own id. The newest entry is
// presented first.
type ConfirmStack struct {
	items []Confirm
}

// Push opens a confirmation for the given product. A second request
// for an id already awaiting confirmation is ignored.
func (s *ConfirmStack) Push(c Confirm) {
	for _, existing := range s.items {
		if existing.ID == c.ID {
			return
		}
	}
	s.items = append(s.items, c)
}

// Top returns the confirmation currently presented.
func (s *ConfirmStack) Top() (Confirm, bool) {
	if len(s.items) == 0 {
		return Confirm{}, false
	}
	return s.items[len(s.items)-1], true
}

// Resolve closes the confirmation for id, whatever the outcome was.
func (s *ConfirmStack) Resolve(id domain.ID) {
	for i, c := range s.items {
		if c.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *ConfirmStack) Len() int { return len(s.items) }
