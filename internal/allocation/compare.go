package allocation

import (
	"fmt"
	"math"

	apperrors "nestegg/internal/errors"
)

// Compare computes current vs. target allocation for the given holdings
// at class, sub-category, and specific-asset level.
//
// A total portfolio value of 0 is a valid state (new user): all current
// and target percentages resolve to 0 and every entry is a hold. A
// holding with a negative market value is a data error and fails the
// whole computation; partial results would mask upstream bugs.
//
// Specific-asset entries track intended future allocation rather than
// realized holdings, so their current value is always 0 and their action
// is always buy.
func Compare(holdings []Holding, targets TargetSet) (*Result, error) {
	for i := range holdings {
		if holdings[i].Value < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidHoldingData,
				fmt.Sprintf("holding %d has negative market value", holdings[i].ID))
		}
	}

	var total int64
	for i := range holdings {
		total += holdings[i].Value
	}

	// Fixed-amount classes are carved out of the percentage pool: the
	// remaining classes' percentages apply to what is left of the
	// portfolio after the fixed amounts.
	var fixedTotal int64
	for _, ct := range targets {
		if ct.UseFixedAmount {
			fixedTotal += ct.FixedAmount
		}
	}
	percentBase := total - fixedTotal
	if percentBase < 0 {
		percentBase = 0
	}

	classCurrent := make(map[AssetClass]int64)
	subCurrent := make(map[SubKey]int64)
	for i := range holdings {
		h := &holdings[i]
		classCurrent[h.Class] += h.Value
		if h.SubCategory != "" {
			subCurrent[SubKey{Class: h.Class, SubCategory: h.SubCategory}] += h.Value
		}
	}

	result := &Result{
		TotalValue:    total,
		ByClass:       make(map[AssetClass]Entry),
		BySubCategory: make(map[SubKey]Entry),
		BySpecific:    make(map[SpecificKey]Entry),
	}

	// Class level: union of classes present in holdings and in targets.
	classes := make(map[AssetClass]struct{})
	for class := range classCurrent {
		classes[class] = struct{}{}
	}
	for class := range targets {
		classes[class] = struct{}{}
	}

	classTargetValue := make(map[AssetClass]int64, len(classes))
	for class := range classes {
		ct := targets.classTarget(class)
		var targetValue int64
		if ct.UseFixedAmount {
			targetValue = ct.FixedAmount
		} else {
			targetValue = share(percentBase, ct.Percent)
		}
		classTargetValue[class] = targetValue
		result.ByClass[class] = newEntry(classCurrent[class], targetValue, total)
	}

	// Sub-category level. A sub-category's target is its share of the
	// class target value, so its displayed percentage stays consistent
	// with the class level regardless of fixed-amount carve-outs.
	subs := make(map[SubKey]struct{})
	for key := range subCurrent {
		subs[key] = struct{}{}
	}
	for class, ct := range targets {
		for name := range ct.SubCategories {
			subs[SubKey{Class: class, SubCategory: name}] = struct{}{}
		}
	}

	subTargetValue := make(map[SubKey]int64, len(subs))
	for key := range subs {
		st := targets.classTarget(key.Class).SubCategories[key.SubCategory]
		targetValue := share(classTargetValue[key.Class], st.Percent)
		subTargetValue[key] = targetValue
		result.BySubCategory[key] = newEntry(subCurrent[key], targetValue, total)
	}

	// Specific-asset level: union of target specifics and labeled holdings.
	specifics := make(map[SpecificKey]float64)
	for class, ct := range targets {
		for sub, st := range ct.SubCategories {
			for name, percent := range st.Specifics {
				specifics[SpecificKey{Class: class, SubCategory: sub, SpecificAsset: name}] = percent
			}
		}
	}
	for i := range holdings {
		h := &holdings[i]
		if h.SubCategory == "" || h.SpecificAsset == "" {
			continue
		}
		key := SpecificKey{Class: h.Class, SubCategory: h.SubCategory, SpecificAsset: h.SpecificAsset}
		if _, ok := specifics[key]; !ok {
			specifics[key] = 0
		}
	}

	for key, percent := range specifics {
		targetValue := share(subTargetValue[SubKey{Class: key.Class, SubCategory: key.SubCategory}], percent)
		entry := newEntry(0, targetValue, total)
		entry.Action = ActionBuy
		result.BySpecific[key] = entry
	}

	return result, nil
}

// share returns percent% of base in cents, rounded to the nearest cent.
func share(base int64, percent float64) int64 {
	return int64(math.Round(float64(base) * percent / 100))
}

// newEntry builds an Entry from current and target values. Percentages
// are shares of the total portfolio value; with a total of 0 they are 0
// rather than NaN, which also forces the difference to 0 and the action
// to hold.
func newEntry(current, target, total int64) Entry {
	e := Entry{
		CurrentValue:    current,
		TargetValue:     target,
		DifferenceValue: target - current,
	}
	if total > 0 {
		e.CurrentPercent = float64(current) / float64(total) * 100
		e.TargetPercent = float64(target) / float64(total) * 100
	}
	e.Difference = e.TargetPercent - e.CurrentPercent
	e.Action = classify(e.Difference)
	return e
}
