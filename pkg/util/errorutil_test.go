package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "passes a DomainError through",
			err:        NewForbidden("forbidden"),
			wantCode:   "FORBIDDEN",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unwraps a wrapped DomainError",
			err:        fmt.Errorf("finalize: %w", NewDatabaseError(errors.New("commit failed"))),
			wantCode:   "DATABASE_ERROR",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "maps missing rows to NOT_FOUND",
			err:        pgx.ErrNoRows,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "maps deadline exceeded to EXTERNAL_SERVICE_ERROR",
			err:        context.DeadlineExceeded,
			wantCode:   "EXTERNAL_SERVICE_ERROR",
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "defaults to INTERNAL_ERROR",
			err:        errors.New("boom"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr := ToDomainError(tt.err)
			require.NotNil(t, domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
		})
	}
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainError_MessageHidesInternals(t *testing.T) {
	err := NewDatabaseError(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	domainErr := ToDomainError(err)
	assert.Equal(t, "storage unavailable", domainErr.Message)
}
