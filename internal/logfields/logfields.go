package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyDocument   = "document"
	KeyTemplate   = "template"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyBlocks     = "blocks"
	KeyBytes      = "bytes"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Document(path string) slog.Attr  { return slog.String(KeyDocument, path) }
func Template(path string) slog.Attr  { return slog.String(KeyTemplate, path) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Blocks(n int) slog.Attr          { return slog.Int(KeyBlocks, n) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
