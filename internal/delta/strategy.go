package delta

// Strategy is the recommended transfer shape for a pending change set.
type Strategy int

const (
	// StrategyDelta transfers only created/updated/deleted records.
	StrategyDelta Strategy = iota
	// StrategyFull retransmits the whole plan. Cheaper server-side than
	// many small statements once most of the dataset changed (bulk
	// import being the typical trigger).
	StrategyFull
)

func (s Strategy) String() string {
	if s == StrategyFull {
		return "full"
	}
	return "delta"
}

// ChooseStrategy recommends delta transfer while fewer than half of the
// current items changed, full transfer otherwise. totalItems is the
// entity count across all collections in the present plan.
//
// The recommendation is advisory: the persistence collaborator may always
// accept either payload.
func ChooseStrategy(totalChanges, totalItems int) Strategy {
	if float64(totalChanges) < float64(totalItems)*0.5 {
		return StrategyDelta
	}
	return StrategyFull
}

// Recommend applies ChooseStrategy to a computed delta and the plan it
// was computed from.
func (d Delta) Recommend(totalItems int) Strategy {
	return ChooseStrategy(d.TotalChanges(), totalItems)
}
