package library

import "strings"

// Members is the membership roster.
type Members struct {
	members []Member
	ids     idAllocator
}

// NewMembers returns an empty roster.
func NewMembers() *Members { return &Members{} }

// Add registers m unless a member with the same name exists. Rejected
// candidates don't consume an ID.
func (s *Members) Add(m Member) (Member, bool) {
	for _, existing := range s.members {
		if existing.Equal(m) {
			return existing.clone(), false
		}
	}
	m.ID = s.ids.next()
	m = m.clone()
	s.members = append(s.members, m)
	return m.clone(), true
}

// Get returns a copy of the member with the given ID.
func (s *Members) Get(id int) (Member, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m.clone(), true
		}
	}
	return Member{}, false
}

// FindByName looks a member up by name, ignoring case.
func (s *Members) FindByName(name string) (Member, bool) {
	for _, m := range s.members {
		if strings.EqualFold(m.Name, name) {
			return m.clone(), true
		}
	}
	return Member{}, false
}

// Replace overwrites the stored member with the same ID.
func (s *Members) Replace(m Member) bool {
	for i := range s.members {
		if s.members[i].ID == m.ID {
			s.members[i] = m.clone()
			return true
		}
	}
	return false
}

// All returns copies of every member in registration order.
func (s *Members) All() []Member {
	out := make([]Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m.clone())
	}
	return out
}
