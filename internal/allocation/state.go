// Package allocation implements the fund-weighting engine behind portfolio
// template construction: an immutable allocation state with reducer-style
// updates, input sanitization, balance validation, weighted risk, and
// submission payload assembly. Everything here is pure; network and storage
// stay with the callers.
package allocation

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// MaxWeight is the largest single weighting a fund may carry.
const MaxWeight = 100.0

// RawWeighting is a weighting as typed, kept as a string so in-progress
// input like "10." survives a round trip. Parsing to a number is an
// explicit step; empty or unparseable input parses to zero.
type RawWeighting string

// Value parses the raw weighting to its numeric value.
func (w RawWeighting) Value() float64 {
	s := strings.TrimSpace(string(w))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsZero reports whether the raw weighting parses to zero.
func (w RawWeighting) IsZero() bool {
	return w.Value() == 0
}

// Entry is one fund's line in the allocation: presence means selected.
type Entry struct {
	FundID int64
	Raw    RawWeighting
}

// State is the allocation for one in-progress template draft: the set of
// selected funds and their raw weightings, in selection order. State is an
// immutable value; every update returns a new State and leaves the receiver
// untouched, so callers can hold onto old states and diff or discard them.
type State struct {
	entries map[int64]RawWeighting
	order   []int64
}

// NewState returns an empty allocation.
func NewState() State {
	return State{
		entries: map[int64]RawWeighting{},
	}
}

func (s State) clone() State {
	entries := make(map[int64]RawWeighting, len(s.entries))
	for id, w := range s.entries {
		entries[id] = w
	}
	order := make([]int64, len(s.order))
	copy(order, s.order)
	return State{entries: entries, order: order}
}

// Select adds a fund to the allocation with no weighting yet.
// Selecting an already-selected fund is a no-op.
func (s State) Select(fundID int64) State {
	if _, ok := s.entries[fundID]; ok {
		return s
	}
	next := s.clone()
	next.entries[fundID] = ""
	next.order = append(next.order, fundID)
	return next
}

// Deselect removes a fund and its weighting from the allocation.
func (s State) Deselect(fundID int64) State {
	if _, ok := s.entries[fundID]; !ok {
		return s
	}
	next := s.clone()
	delete(next.entries, fundID)
	for i, id := range next.order {
		if id == fundID {
			next.order = append(next.order[:i], next.order[i+1:]...)
			break
		}
	}
	return next
}

// SetWeighting replaces a fund's weighting with the sanitized input,
// selecting the fund if it wasn't already. Input whose parsed value exceeds
// MaxWeight is rejected: the prior state is returned unchanged and accepted
// is false, so the field keeps whatever it held before.
func (s State) SetWeighting(fundID int64, input string) (State, bool) {
	raw := Sanitize(input)
	if raw.Value() > MaxWeight {
		return s, false
	}
	next := s.Select(fundID).clone()
	next.entries[fundID] = raw
	return next, true
}

// IsSelected reports whether the fund is part of the allocation.
func (s State) IsSelected(fundID int64) bool {
	_, ok := s.entries[fundID]
	return ok
}

// Raw returns the fund's raw weighting as typed.
func (s State) Raw(fundID int64) (RawWeighting, bool) {
	w, ok := s.entries[fundID]
	return w, ok
}

// Entries returns the allocation lines in selection order.
func (s State) Entries() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, Entry{FundID: id, Raw: s.entries[id]})
	}
	return entries
}

// Len returns the number of selected funds.
func (s State) Len() int {
	return len(s.order)
}

// Total sums the parsed weightings across all selected funds.
func (s State) Total() float64 {
	if len(s.order) == 0 {
		return 0
	}
	weights := make([]float64, 0, len(s.order))
	for _, id := range s.order {
		weights = append(weights, s.entries[id].Value())
	}
	return floats.Sum(weights)
}

// Sanitize reduces weighting input to digits and a single decimal point,
// truncating the fraction to 2 decimal places. "12a.3x45" becomes "12.34";
// input with no usable characters becomes "".
func Sanitize(input string) RawWeighting {
	var b strings.Builder
	seenPoint := false
	fracDigits := 0
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			if seenPoint {
				if fracDigits >= 2 {
					continue
				}
				fracDigits++
			}
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return RawWeighting(b.String())
}
