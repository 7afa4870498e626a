package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassThrough(t *testing.T) {
	original := NewConflict("already exists", map[string]any{"id": 7})

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	assert.Equal(t, map[string]any{"id": 7}, mapped.Details)
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	for _, err := range []error{sql.ErrNoRows, pgx.ErrNoRows} {
		mapped := ToDomainError(err)
		require.NotNil(t, mapped)
		assert.Equal(t, "NOT_FOUND", mapped.Code)
		assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	}
}

func TestToDomainError_WrappedNoRows(t *testing.T) {
	err := fmt.Errorf("loading account: %w", pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", ToDomainError(err).Code)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.EqualError(t, errors.Unwrap(mapped), "boom")
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainError_ErrorString(t *testing.T) {
	bare := &DomainError{Message: "no such profile"}
	assert.Equal(t, "no such profile", bare.Error())

	wrapped := &DomainError{Message: "sequence allocation failed", Err: errors.New("connection reset")}
	assert.Equal(t, "sequence allocation failed: connection reset", wrapped.Error())
}

func TestNewAllocationFailed(t *testing.T) {
	cause := errors.New("counter unavailable")
	err := NewAllocationFailed(cause)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALLOCATION_FAILED", domainErr.Code)
	assert.ErrorIs(t, err, cause)
}
