package exporter

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/internal/summary"
)

// jsonFormatTag identifies the document layout to downstream consumers
const jsonFormatTag = "summary_tables_v1"

// JSONWriter writes a report's tables as one JSON document with a metadata
// envelope
type JSONWriter struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewJSONWriter creates a JSON bundle writer
func NewJSONWriter(logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{logger: logger, now: time.Now}
}

type jsonRow struct {
	Label  string   `json:"label"`
	Indent int      `json:"indent"`
	Values []string `json:"values"`
}

type jsonTable struct {
	Name       string    `json:"name"`
	LabelTitle string    `json:"label_title"`
	Groups     []string  `json:"groups"`
	Rows       []jsonRow `json:"rows"`
}

type jsonDocument struct {
	Tables      []jsonTable `json:"tables"`
	Count       int         `json:"count"`
	GeneratedAt string      `json:"generated_at"`
	Format      string      `json:"format"`
}

// WriteTables writes the tables to path with generation metadata
func (w *JSONWriter) WriteTables(path string, tables []summary.Table) error {
	w.logger.Info("writing table JSON bundle",
		slog.String("path", path),
		slog.Int("table_count", len(tables)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory for "+path, err)
	}

	doc := jsonDocument{
		Tables:      make([]jsonTable, 0, len(tables)),
		Count:       len(tables),
		GeneratedAt: w.now().Format(time.RFC3339),
		Format:      jsonFormatTag,
	}
	for _, table := range tables {
		rows := make([]jsonRow, 0, len(table.Rows))
		for _, row := range table.Rows {
			rows = append(rows, jsonRow{Label: row.Label, Indent: row.Indent, Values: row.Values})
		}
		doc.Tables = append(doc.Tables, jsonTable{
			Name:       table.Name,
			LabelTitle: table.LabelTitle,
			Groups:     table.Groups,
			Rows:       rows,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON file "+path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return apperrors.NewStorageError("failed to encode tables to "+path, err)
	}
	return nil
}
