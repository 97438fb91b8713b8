package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nestegg/internal/allocation"
	apperrors "nestegg/internal/errors"
	"nestegg/internal/logger"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new portfolio snapshot service.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// RecordSnapshot records the user's net worth at the given time, split
// into cash and invested value. RecordedAt is truncated to the day so the
// nightly job upserts instead of stacking duplicates.
func (s *snapshotService) RecordSnapshot(userID uint, recordedAt time.Time) (*models.PortfolioSnapshot, error) {
	day := recordedAt.UTC().Truncate(24 * time.Hour)

	var assets []models.Asset
	if err := s.db.Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snapshot := &models.PortfolioSnapshot{
		UserID:     userID,
		RecordedAt: day,
	}
	for i := range assets {
		a := &assets[i]
		snapshot.TotalValue += a.Value
		if a.Class == allocation.ClassCash {
			snapshot.CashValue += a.Value
		} else {
			snapshot.AssetValue += a.Value
		}
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recorded_at"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_value", "cash_value", "asset_value"}),
	}).Create(snapshot).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// ComputeAndRecordSnapshots records a snapshot for every active user and
// returns the number of snapshots written. A failing user is logged and
// skipped so one bad account does not starve the rest of the batch.
func (s *snapshotService) ComputeAndRecordSnapshots(recordedAt time.Time) (int, error) {
	var userIDs []uint
	if err := s.db.Model(&models.User{}).Where("is_active = ?", true).Pluck("id", &userIDs).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	recorded := 0
	for _, userID := range userIDs {
		if _, err := s.RecordSnapshot(userID, recordedAt); err != nil {
			logger.Get().Errorw("snapshot failed", "user_id", userID, "error", err.Error())
			continue
		}
		recorded++
	}
	return recorded, nil
}

func (s *snapshotService) GetSnapshots(userID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	page.Defaults()

	query := s.db.Model(&models.PortfolioSnapshot{}).Where("user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("recorded_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("recorded_at <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.PortfolioSnapshot
	if err := query.Scopes(pagination.Paginate(page)).Order("recorded_at DESC").Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, total)
	return &resp, nil
}
