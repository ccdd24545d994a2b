package aggregates

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
)

func TestMapErrorNil(t *testing.T) {
	if got := MapError("op", nil); got != nil {
		t.Fatalf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	typed := domainagg.NewError(domainagg.CodeValidation, "op", "bad input", nil)
	if got := MapError("other", typed); got != typed {
		t.Fatalf("MapError should pass typed errors through, got %v", got)
	}
}

func TestMapErrorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domainagg.ErrorCode
	}{
		{"record not found", gorm.ErrRecordNotFound, domainagg.CodeNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, domainagg.CodeConflict},
		{"context canceled", context.Canceled, domainagg.CodeRetryable},
		{"deadline exceeded", context.DeadlineExceeded, domainagg.CodeRetryable},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, domainagg.CodeConflict},
		{"pg serialization failure", &pgconn.PgError{Code: "40001"}, domainagg.CodeRetryable},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, domainagg.CodeRetryable},
		{"wrapped pg unique violation", fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}), domainagg.CodeConflict},
		{"duplicate key text", errors.New(`duplicate key value violates unique constraint "idx_skill_category_name"`), domainagg.CodeConflict},
		{"deadlock text", errors.New("deadlock detected"), domainagg.CodeRetryable},
		{"unknown", errors.New("boom"), domainagg.CodeInternal},
	}
	for _, tc := range cases {
		got := MapError("op", tc.err)
		if code := domainagg.CodeOf(got); code != tc.want {
			t.Fatalf("%s: code = %q, want %q", tc.name, code, tc.want)
		}
		if !errors.Is(got, tc.err) {
			t.Fatalf("%s: mapped error should wrap the cause", tc.name)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("pg 23505 should be a unique violation")
	}
	if !IsUniqueViolation(MapError("op", &pgconn.PgError{Code: "23505"})) {
		t.Fatal("mapped conflict should be a unique violation")
	}
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatal("gorm duplicated key should be a unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatal("unrelated error should not be a unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil should not be a unique violation")
	}
}
