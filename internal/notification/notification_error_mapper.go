package notification

import (
	"errors"

	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrNotificationNotFound
	}

	if dberr.IsUniqueViolation(err, "uq_notification_source") {
		return notificationerrors.ErrNotificationExists
	}
	return err
}
