package ui

import "sort"

// selection implements extended selection over grid item indices:
// click selects one, ctrl-click toggles, shift-click selects the range from the anchor.
type selection struct {
	items  map[int]bool
	anchor int
}

func newSelection() *selection {
	return &selection{
		items:  make(map[int]bool),
		anchor: -1,
	}
}

// Select makes id the only selected item.
func (s *selection) Select(id int) {
	s.items = map[int]bool{id: true}
	s.anchor = id
}

// Toggle flips id without touching the rest of the selection.
func (s *selection) Toggle(id int) {
	if s.items[id] {
		delete(s.items, id)
	} else {
		s.items[id] = true
	}
	s.anchor = id
}

// Extend selects every item between the anchor and id, inclusive.
func (s *selection) Extend(id int) {
	if s.anchor < 0 {
		s.Select(id)
		return
	}
	from, to := s.anchor, id
	if from > to {
		from, to = to, from
	}
	s.items = make(map[int]bool, to-from+1)
	for i := from; i <= to; i++ {
		s.items[i] = true
	}
}

// Clear drops the selection and the anchor.
func (s *selection) Clear() {
	s.items = make(map[int]bool)
	s.anchor = -1
}

// Contains reports whether id is selected.
func (s *selection) Contains(id int) bool {
	return s.items[id]
}

// Items returns the selected indices in ascending order.
func (s *selection) Items() []int {
	ids := make([]int, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
