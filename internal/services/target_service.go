package services

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"nestegg/internal/allocation"
	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
)

// sumTolerance allows for float rounding when checking that percentages
// sum to 100.
const sumTolerance = 0.01

type targetService struct {
	db *gorm.DB
}

// NewTargetService creates a new allocation target service.
func NewTargetService(db *gorm.DB) TargetServicer {
	return &targetService{db: db}
}

func (s *targetService) GetTargetRows(userID uint) ([]models.AllocationTarget, error) {
	var rows []models.AllocationTarget
	if err := s.db.Where("user_id = ?", userID).Order("class, sub_category, specific_asset").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// GetTargets assembles the user's flat target rows into the comparator's
// hierarchical target set.
func (s *targetService) GetTargets(userID uint) (allocation.TargetSet, error) {
	rows, err := s.GetTargetRows(userID)
	if err != nil {
		return nil, err
	}

	targets := allocation.TargetSet{}
	// Class rows first so sub and specific rows attach to existing entries.
	for i := range rows {
		row := &rows[i]
		if !row.IsClassRow() {
			continue
		}
		targets[row.Class] = allocation.ClassTarget{
			Percent:        row.Percent,
			UseFixedAmount: row.UseFixedAmount,
			FixedAmount:    row.FixedAmount,
			SubCategories:  map[string]allocation.SubCategoryTarget{},
		}
	}
	for i := range rows {
		row := &rows[i]
		if !row.IsSubCategoryRow() {
			continue
		}
		ct := targets[row.Class]
		if ct.SubCategories == nil {
			ct.SubCategories = map[string]allocation.SubCategoryTarget{}
		}
		ct.SubCategories[row.SubCategory] = allocation.SubCategoryTarget{
			Percent:   row.Percent,
			Specifics: map[string]float64{},
		}
		targets[row.Class] = ct
	}
	for i := range rows {
		row := &rows[i]
		if !row.IsSpecificRow() {
			continue
		}
		ct := targets[row.Class]
		if ct.SubCategories == nil {
			ct.SubCategories = map[string]allocation.SubCategoryTarget{}
		}
		st := ct.SubCategories[row.SubCategory]
		if st.Specifics == nil {
			st.Specifics = map[string]float64{}
		}
		st.Specifics[row.SpecificAsset] = row.Percent
		ct.SubCategories[row.SubCategory] = st
		targets[row.Class] = ct
	}
	return targets, nil
}

// ReplaceTargets validates and atomically replaces the user's full target
// allocation. Validation happens at save time so the comparator never has
// to reject a stored configuration.
func (s *targetService) ReplaceTargets(userID uint, rows []TargetRow) error {
	if err := validateTargetRows(rows); err != nil {
		return err
	}

	records := make([]models.AllocationTarget, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.AllocationTarget{
			UserID:         userID,
			Class:          r.Class,
			SubCategory:    r.SubCategory,
			SpecificAsset:  r.SpecificAsset,
			Percent:        r.Percent,
			UseFixedAmount: r.UseFixedAmount,
			FixedAmount:    r.FixedAmount,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.AllocationTarget{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func validateTargetRows(rows []TargetRow) error {
	classSum := 0.0
	subSums := map[allocation.SubKey]float64{}
	specificSums := map[allocation.SubKey]float64{}
	seen := map[allocation.SpecificKey]bool{}

	for _, r := range rows {
		if !r.Class.Valid() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset class: "+string(r.Class))
		}
		if r.SubCategory == "" && r.SpecificAsset != "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "specific asset targets require a sub-category")
		}
		key := allocation.SpecificKey{Class: r.Class, SubCategory: r.SubCategory, SpecificAsset: r.SpecificAsset}
		if seen[key] {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "duplicate target row: "+key.String())
		}
		seen[key] = true

		if r.UseFixedAmount {
			if r.Class != allocation.ClassCash || r.SubCategory != "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "fixed amounts are only supported on the cash class")
			}
			if r.FixedAmount < 0 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "fixed amount cannot be negative")
			}
			continue
		}
		if r.Percent < 0 || r.Percent > 100 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "percent must be between 0 and 100")
		}

		switch {
		case r.SubCategory == "":
			classSum += r.Percent
		case r.SpecificAsset == "":
			subSums[allocation.SubKey{Class: r.Class}] += r.Percent
		default:
			specificSums[allocation.SubKey{Class: r.Class, SubCategory: r.SubCategory}] += r.Percent
		}
	}

	// Fixed-amount classes sit outside the percentage pool, so the
	// remaining class percentages must still cover the whole pool.
	if len(rows) > 0 && math.Abs(classSum-100) > sumTolerance {
		return apperrors.WithMessage(apperrors.ErrInvalidTargetSum,
			fmt.Sprintf("class percentages sum to %.2f, expected 100", classSum))
	}
	for key, sum := range subSums {
		if math.Abs(sum-100) > sumTolerance {
			return apperrors.WithMessage(apperrors.ErrInvalidTargetSum,
				fmt.Sprintf("sub-category percentages for %s sum to %.2f, expected 100", key.Class, sum))
		}
	}
	for key, sum := range specificSums {
		if sum > 100+sumTolerance {
			return apperrors.WithMessage(apperrors.ErrInvalidTargetSum,
				fmt.Sprintf("specific asset percentages for %s exceed 100", key.String()))
		}
	}
	return nil
}

// AutoCalculate suggests equity and bond class percentages from the user's
// age and the given risk-free rate, holding the user's other class targets
// constant.
func (s *targetService) AutoCalculate(userID uint, riskFreeRate float64) (*AutoTargetSuggestion, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if user.BirthYear == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "set a birth year on your profile to use the automatic target")
	}
	age := time.Now().Year() - user.BirthYear
	if age < 0 || age > 150 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "birth year produces an implausible age")
	}

	rows, err := s.GetTargetRows(userID)
	if err != nil {
		return nil, err
	}
	otherPercent := 0.0
	for i := range rows {
		row := &rows[i]
		if !row.IsClassRow() || row.UseFixedAmount {
			continue
		}
		if row.Class != allocation.ClassEquity && row.Class != allocation.ClassBonds {
			otherPercent += row.Percent
		}
	}

	equity, bond := allocation.AutoTarget(float64(age), riskFreeRate, otherPercent)
	return &AutoTargetSuggestion{
		EquityPercent: equity,
		BondPercent:   bond,
		Age:           age,
		RiskFreeRate:  riskFreeRate,
	}, nil
}
