// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "github.com/u-root/wifitable/pkg/wifi"

// State is everything the table page shows: the last scan, the filter, the
// sort and the selected row. The zero value is not usable; call NewState.
type State struct {
	records []wifi.Record
	filter  string

	sorted     bool
	sortBy     Column
	descending bool
	// next holds, per column, the direction its next activation sorts in.
	next map[Column]bool

	selected int
}

func NewState() *State {
	return &State{next: make(map[Column]bool)}
}

// Replace swaps in the result of a new scan.
func (s *State) Replace(records []wifi.Record) {
	s.records = records
	s.clamp()
}

// Len is the number of records of the last scan, before filtering.
func (s *State) Len() int {
	return len(s.records)
}

// ToggleSort sorts by c. The first activation of a column sorts ascending,
// each further activation of the same column flips its direction.
func (s *State) ToggleSort(c Column) {
	s.sorted = true
	s.sortBy = c
	s.descending = s.next[c]
	s.next[c] = !s.descending
}

// SortColumn reports the active sort, ok is false before any ToggleSort.
func (s *State) SortColumn() (c Column, descending bool, ok bool) {
	return s.sortBy, s.descending, s.sorted
}

func (s *State) SetFilter(f string) {
	s.filter = f
	s.clamp()
}

func (s *State) Filter() string {
	return s.filter
}

// View returns the filtered and sorted records, as displayed.
func (s *State) View() []wifi.Record {
	v := Filter(s.records, s.filter)
	if s.sorted {
		v = Sort(v, s.sortBy, s.descending)
	}
	return v
}

// Rows returns the cells of View.
func (s *State) Rows() [][]string {
	var rows [][]string
	for _, r := range s.View() {
		rows = append(rows, Row(r))
	}
	return rows
}

// Move shifts the selection by delta rows, staying inside the view.
func (s *State) Move(delta int) {
	s.selected += delta
	s.clamp()
}

// SetSelected selects row i of the view.
func (s *State) SetSelected(i int) {
	s.selected = i
	s.clamp()
}

// Index is the selected row of the view, or -1 if the view is empty.
func (s *State) Index() int {
	if len(s.View()) == 0 {
		return -1
	}
	return s.selected
}

// Selected returns the selected record. ok is false if the view is empty.
func (s *State) Selected() (wifi.Record, bool) {
	v := s.View()
	if len(v) == 0 {
		return wifi.Record{}, false
	}
	return v[s.selected], true
}

func (s *State) clamp() {
	n := len(s.View())
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}
