package allocation

import (
	"fmt"
	"math"
)

// DefaultTolerance is the distance from 100% within which an allocation
// still counts as balanced. Deployments with many small fractional holdings
// can widen this through configuration.
const DefaultTolerance = 0.01

// floatSlack absorbs float64 representation error at the tolerance
// boundary: three entries of 33.33 must land within 0.01 of 100 even
// though their binary sum misses by 5e-15. Weightings carry at most two
// decimals, so genuine differences are never this small.
const floatSlack = 1e-9

// Status classifies an allocation total against the 100% target
type Status string

const (
	StatusEmpty          Status = "empty"
	StatusBalanced       Status = "balanced"
	StatusOverAllocated  Status = "over_allocated"
	StatusUnderAllocated Status = "under_allocated"
)

// Assessment is the result of validating an allocation. Valid gates
// submission; Status drives the balance indicator; Messages are inline,
// human-readable explanations of whatever blocks submission.
type Assessment struct {
	Valid     bool
	Status    Status
	Total     float64
	Remaining float64 // 100 - Total; negative when over-allocated
	ZeroFunds []int64 // selected funds whose weighting parses to zero
	Messages  []string
}

// Balanced reports whether the total landed within tolerance of 100%.
func (a Assessment) Balanced() bool {
	return a.Status == StatusBalanced
}

// Validate decides whether the allocation is submittable. An allocation is
// valid when the total sits within tolerance of 100%, at least one selected
// fund carries a positive weighting, and no selected fund is left at zero.
// A fund parked at zero blocks submission even when the rest sum to 100.
// Pure function; a tolerance <= 0 falls back to DefaultTolerance.
func Validate(s State, tolerance float64) Assessment {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	total := s.Total()
	a := Assessment{
		Total:     total,
		Remaining: 100 - total,
	}

	if s.Len() == 0 {
		a.Status = StatusEmpty
		a.Messages = append(a.Messages, "no funds selected")
		return a
	}

	switch {
	case math.Abs(total-100) <= tolerance+floatSlack:
		a.Status = StatusBalanced
	case total > 100:
		a.Status = StatusOverAllocated
		a.Messages = append(a.Messages, fmt.Sprintf("allocation totals %.2f%%, %.2f%% over target", total, total-100))
	default:
		a.Status = StatusUnderAllocated
		a.Messages = append(a.Messages, fmt.Sprintf("allocation totals %.2f%%, %.2f%% remaining", total, 100-total))
	}

	positive := 0
	for _, e := range s.Entries() {
		if e.Raw.Value() > 0 {
			positive++
		} else {
			a.ZeroFunds = append(a.ZeroFunds, e.FundID)
		}
	}

	if positive == 0 {
		a.Messages = append(a.Messages, "no fund has a positive weighting")
	} else if len(a.ZeroFunds) > 0 {
		noun := "funds have"
		if len(a.ZeroFunds) == 1 {
			noun = "fund has"
		}
		a.Messages = append(a.Messages, fmt.Sprintf("%d selected %s no weighting", len(a.ZeroFunds), noun))
	}

	a.Valid = a.Status == StatusBalanced && positive > 0 && len(a.ZeroFunds) == 0
	return a
}
