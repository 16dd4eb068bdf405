package pgsql

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
)

func TestMapWriteError(t *testing.T) {
	assert.NoError(t, mapWriteError(nil, "save user"))

	uniqueErr := &pgconn.PgError{Code: uniqueViolation}
	assert.ErrorIs(t, mapWriteError(uniqueErr, "save user"), apperrors.ErrDuplicate)

	otherErr := errors.New("connection reset")
	got := mapWriteError(otherErr, "save user")
	assert.ErrorIs(t, got, otherErr)
	assert.NotErrorIs(t, got, apperrors.ErrDuplicate)
}

func TestRequireRow(t *testing.T) {
	assert.ErrorIs(t, requireRow(pgconn.NewCommandTag("UPDATE 0"), "event"), apperrors.ErrNotFound)
	assert.NoError(t, requireRow(pgconn.NewCommandTag("UPDATE 1"), "event"))
}
