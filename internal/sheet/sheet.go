// Package sheet writes patient batches to spreadsheet files.
//
// A write is scoped: the new content goes to a temporary file next to the
// target, and only a fully written file replaces the previous one.
package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrsinham/bulkforge/internal/logging"
	"github.com/mrsinham/bulkforge/internal/patient"
	"github.com/xuri/excelize/v2"
)

// Format is an output file format.
type Format string

const (
	XLSX Format = "xlsx"
	CSV  Format = "csv"
)

// AllFormats returns the supported formats.
func AllFormats() []Format {
	return []Format{XLSX, CSV}
}

// ParseFormat parses a format name. An empty string means XLSX.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx":
		return XLSX, nil
	case "csv":
		return CSV, nil
	default:
		return "", fmt.Errorf("invalid format %q, valid formats: %v", s, AllFormats())
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// SheetName is the single worksheet written to xlsx files.
const SheetName = "Sheet1"

// Header is the fixed column order. DOB, Gender and BMI are reserved and
// left empty.
var Header = []string{"Full Name", "Email", "Phone", "DOB", "Gender", "BMI"}

// IOError reports a failed step of a scoped write.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Path joins dir and fileName and appends the format extension unless
// fileName already carries it.
func Path(dir, fileName string, f Format) string {
	if !strings.EqualFold(filepath.Ext(fileName), f.Ext()) {
		fileName += f.Ext()
	}
	return filepath.Join(dir, fileName)
}

// DefaultFileMode is the permission of a file written where none existed.
const DefaultFileMode fs.FileMode = 0o644

// Writer serializes batches in one format.
type Writer struct {
	Format Format
}

// NewWriter creates a Writer for format.
func NewWriter(format Format) *Writer {
	return &Writer{Format: format}
}

// Write replaces the file at path with batch, logging to the logger in ctx.
// The previous file stays in place until the new content has been fully
// written and closed, and its permissions carry over to the new file.
func (w *Writer) Write(ctx context.Context, path string, batch patient.Batch) error {
	logger := logging.FromContext(ctx)

	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return &IOError{Op: "write", Path: path, Err: errors.New("path is a directory")}
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := w.encode(tmp, batch); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}

	// Rename replaces an existing target on every supported platform.
	if err := os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	committed = true

	logger.Info("file written", "path", path, "format", string(w.Format), "rows", len(batch)+1, "mode", mode.String())
	return nil
}

func (w *Writer) encode(out io.Writer, batch patient.Batch) error {
	switch w.Format {
	case XLSX, "":
		return encodeXLSX(out, batch)
	case CSV:
		return encodeCSV(out, batch)
	default:
		return fmt.Errorf("unsupported format %q", w.Format)
	}
}

func encodeXLSX(out io.Writer, batch patient.Batch) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range batch {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{r.FullName, r.Email, r.Phone}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	_, err = f.WriteTo(out)
	return err
}

func encodeCSV(out io.Writer, batch patient.Batch) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(Header))
	for i, r := range batch {
		row[0], row[1], row[2] = r.FullName, r.Email, r.Phone
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
