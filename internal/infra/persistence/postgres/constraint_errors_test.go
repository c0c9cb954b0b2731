package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.True(t, isUniqueConstraintViolation(
		errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert failed"),
	))

	assert.False(t, isUniqueConstraintViolation(errors.New("some other failure")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email"`)))

	assert.False(t, isNotNullConstraintViolation(errors.New("some other failure")))
}
