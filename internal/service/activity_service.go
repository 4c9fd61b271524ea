package service

import (
	"context"

	"care-platform-api/internal/domain/entity"
	"care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ActivityService writes backoffice activity records. Recording is
// best-effort: callers log failures and never fail the request over them.
type ActivityService interface {
	Record(ctx context.Context, db *gorm.DB, adminID *uuid.UUID, admin string, action string, metadata entity.JSON) error
}

type activityService struct {
	log          *logrus.Logger
	activityRepo repository.ActivityLogRepository
}

func NewActivityService(log *logrus.Logger, activityRepo repository.ActivityLogRepository) ActivityService {
	return &activityService{
		log:          log,
		activityRepo: activityRepo,
	}
}

func (s *activityService) Record(ctx context.Context, db *gorm.DB, adminID *uuid.UUID, admin string, action string, metadata entity.JSON) error {
	if admin == "" {
		admin = "system"
	}

	activity := &entity.ActivityLog{
		AdminID:  adminID,
		Admin:    admin,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.activityRepo.Create(ctx, db, activity); err != nil {
		s.log.Warnf("Failed to record activity %s: %+v", action, err)
		return err
	}

	return nil
}
