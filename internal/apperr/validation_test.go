package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
)

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("expected format `alice@wonderland`")
	err := apperr.NewValidationWrap("invalid account id", inner)

	if err.Error() != "invalid account id: expected format `alice@wonderland`" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", apperr.NewValidation("empty id"))

	var ve *apperr.ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through wrapping")
	}
	if ve.Message != "empty id" {
		t.Errorf("expected 'empty id', got %q", ve.Message)
	}
}
