// Package allocation implements the asset-allocation comparison and
// rebalancing engine: given the user's current holdings and a target
// allocation, it computes current vs. target at three hierarchy levels
// (asset class, sub-category, specific asset) and derives a buy/sell/hold
// action per entry.
//
// Everything in this package is pure computation over in-memory values.
// There is no I/O, inputs are never mutated, and results are recomputed
// on every call rather than persisted.
package allocation

// AssetClass is a top-level investment category.
type AssetClass string

const (
	ClassEquity     AssetClass = "equity"
	ClassBonds      AssetClass = "bonds"
	ClassCrypto     AssetClass = "crypto"
	ClassRealEstate AssetClass = "real_estate"
	ClassCash       AssetClass = "cash"
	ClassCommodity  AssetClass = "commodity"
)

// Classes lists all known asset classes.
var Classes = []AssetClass{
	ClassEquity, ClassBonds, ClassCrypto, ClassRealEstate, ClassCash, ClassCommodity,
}

// Valid reports whether c is a known asset class.
func (c AssetClass) Valid() bool {
	switch c {
	case ClassEquity, ClassBonds, ClassCrypto, ClassRealEstate, ClassCash, ClassCommodity:
		return true
	}
	return false
}

// Holding is a single position in the user's inventory. Value is the
// current market value in cents; integer cents make non-finite values
// unrepresentable, so input validation reduces to a sign check.
type Holding struct {
	ID            uint       `json:"id"`
	Class         AssetClass `json:"class"`
	SubCategory   string     `json:"sub_category,omitempty"`
	SpecificAsset string     `json:"specific_asset,omitempty"`
	Value         int64      `json:"value"`
}

// SubCategoryTarget holds the target share of a sub-category within its
// asset class, plus optional specific-asset shares within the sub-category.
type SubCategoryTarget struct {
	Percent   float64            `json:"percent"`
	Specifics map[string]float64 `json:"specifics,omitempty"`
}

// ClassTarget holds the target for one asset class. Percent is the share
// of the portfolio. When UseFixedAmount is set (cash), FixedAmount in
// cents replaces the percentage and the class is excluded from the
// percentage pool: the remaining classes' percentages apply to the
// portfolio value left after subtracting the fixed amount.
type ClassTarget struct {
	Percent        float64                      `json:"percent"`
	UseFixedAmount bool                         `json:"use_fixed_amount,omitempty"`
	FixedAmount    int64                        `json:"fixed_amount,omitempty"`
	SubCategories  map[string]SubCategoryTarget `json:"sub_categories,omitempty"`
}

// TargetSet is a user's full target allocation, keyed by asset class.
// Classes without an entry default to a 0% target.
type TargetSet map[AssetClass]ClassTarget

// classTarget looks up the target for a class, defaulting to zero.
// Missing entries are a defined state (IncompleteTargetConfiguration is
// not an error), so the zero default lives in one place instead of being
// coalesced at each call site.
func (ts TargetSet) classTarget(class AssetClass) ClassTarget {
	if ts == nil {
		return ClassTarget{}
	}
	return ts[class]
}

// SubKey identifies a sub-category within an asset class. Using a value
// type instead of a "class:sub" string keeps grouping free of string
// parsing; String is for presentation only.
type SubKey struct {
	Class       AssetClass `json:"class"`
	SubCategory string     `json:"sub_category"`
}

func (k SubKey) String() string {
	return string(k.Class) + ":" + k.SubCategory
}

// SpecificKey identifies a specific asset within a sub-category.
type SpecificKey struct {
	Class         AssetClass `json:"class"`
	SubCategory   string     `json:"sub_category"`
	SpecificAsset string     `json:"specific_asset"`
}

func (k SpecificKey) String() string {
	return string(k.Class) + ":" + k.SubCategory + ":" + k.SpecificAsset
}

// Action is the rebalancing classification for one entry.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// RebalanceBand is the dead-band in percentage points within which a gap
// between current and target allocation is considered on target. The
// boundary is inclusive: a difference of exactly RebalanceBand is a hold.
const RebalanceBand = 1.0

// bandEpsilon absorbs float rounding so that a difference of exactly the
// band, derived from integer cents, still classifies as a hold.
const bandEpsilon = 1e-9

// classify derives the action for a difference in percentage points.
// Positive differences mean under-allocated.
func classify(difference float64) Action {
	switch {
	case difference > RebalanceBand+bandEpsilon:
		return ActionBuy
	case difference < -(RebalanceBand + bandEpsilon):
		return ActionSell
	default:
		return ActionHold
	}
}

// Entry is the comparison result for one line of the hierarchy. Values
// are in cents, percentages are shares of the total portfolio value, and
// Difference is TargetPercent - CurrentPercent in percentage points.
type Entry struct {
	CurrentValue    int64   `json:"current_value"`
	CurrentPercent  float64 `json:"current_percent"`
	TargetValue     int64   `json:"target_value"`
	TargetPercent   float64 `json:"target_percent"`
	Difference      float64 `json:"difference"`
	DifferenceValue int64   `json:"difference_value"`
	Action          Action  `json:"action"`
}

// Result is the full comparison output. The maps are unordered; sorting
// for presentation is the caller's concern. The struct-keyed maps are
// flattened to "class:sub[:asset]" string keys at the JSON boundary by
// the HTTP layer.
type Result struct {
	TotalValue    int64
	ByClass       map[AssetClass]Entry
	BySubCategory map[SubKey]Entry
	BySpecific    map[SpecificKey]Entry
}
