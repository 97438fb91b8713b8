package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"nestegg/internal/logger"
	"nestegg/internal/models"
)

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new audit service.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit entry. Failures are logged, never surfaced: audit
// logging must not break the operation it describes.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		if b, err := json.Marshal(changes); err == nil {
			changesJSON = string(b)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("audit log write failed",
			"action", action,
			"resource_type", resourceType,
			"error", err.Error(),
		)
	}
}
