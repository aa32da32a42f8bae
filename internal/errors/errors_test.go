package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewValidationError("treatment list is empty"),
			want: "[VALIDATION] treatment list is empty",
		},
		{
			name: "with cause",
			err:  NewParsingError("bad header row", fmt.Errorf("row 1")),
			want: "[PARSING] bad header row: row 1",
		},
		{
			name: "not found",
			err:  NewNotFoundError("column AGE"),
			want: "[NOT_FOUND] column AGE not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewStorageError("open dataset", cause)

	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var appErr *AppError
	wrapped := fmt.Errorf("load adsl: %w", err)
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewConfigError("missing variable", nil).
		WithContext("column", "AGE").
		WithContext("dataset", "adsl.csv")

	assert.Equal(t, "AGE", err.Context["column"])
	assert.Equal(t, "adsl.csv", err.Context["dataset"])
}
