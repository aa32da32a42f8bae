package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
)

// FileValidator checks dataset files before they are read
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateDataFile checks that a dataset file exists, is a regular non-empty
// file, and carries a supported extension (.csv or .xlsx).
func (v *FileValidator) ValidateDataFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Dataset file does not exist",
			slog.String("file", path))
		return apperrors.NewNotFoundError(fmt.Sprintf("dataset file %s", path))
	}
	if err != nil {
		v.logger.Error("Failed to stat dataset file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to stat %s", path), err)
	}
	if info.IsDir() {
		return apperrors.NewValidationError(fmt.Sprintf("%s is a directory, not a dataset file", path))
	}
	if info.Size() == 0 {
		return apperrors.NewValidationError(fmt.Sprintf("dataset file %s is empty", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
	default:
		return apperrors.NewValidationError(
			fmt.Sprintf("unsupported dataset file type %s (want .csv or .xlsx)", filepath.Ext(path)))
	}

	v.logger.Debug("Dataset file validated",
		slog.String("file", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}
	return nil
}
