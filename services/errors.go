package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/softpro2020/foodland/apperr"
)

// StoreErr maps storage failures onto the application error taxonomy.
// field names the column whose unique index most plausibly fired.
func StoreErr(err error, field string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(field, field+" already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound("record not found")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Integrity("referenced record is missing")
	}
	return apperr.Wrap(err, apperr.ErrInternal, "")
}
