package healthdata

// FillPolicy decides what value a missing numeric cell takes during
// normalization. It is a named, swappable step so the cleaning behavior can
// change without touching load logic.
type FillPolicy interface {
	Name() string
	// Missing returns the cell value substituted for a missing numeric input.
	Missing() any
}

// FillZero is the default policy: every missing numeric cell becomes 0,
// across all numeric columns. After a load under FillZero no numeric cell
// is nil.
type FillZero struct{}

func (FillZero) Name() string { return "zero" }

func (FillZero) Missing() any { return float64(0) }

// KeepMissing leaves missing numeric cells as nil so absence stays
// observable downstream.
type KeepMissing struct{}

func (KeepMissing) Name() string { return "keep-missing" }

func (KeepMissing) Missing() any { return nil }
