//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "explicit kind", err: errors.New("no rows"), kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: KindDuplicateKey},
		{name: "foreign key violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), want: KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: KindDBFailure},
		{name: "plain error", err: errors.New("conn reset"), want: KindDBFailure},
		{name: "nil error", err: nil, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, IsKind(err, tt.want))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.True(t, IsRetryable(fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected})))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, IsRetryable(errors.New("boom")))
}
