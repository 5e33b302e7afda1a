// Package telemetry records recall query telemetry as Parquet files.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

// QueryRecord is a single query log entry in Parquet storage.
type QueryRecord struct {
	ID         string    `parquet:"id"`
	Timestamp  time.Time `parquet:"timestamp"`
	Level      string    `parquet:"level"`
	Message    string    `parquet:"message"`
	Query      string    `parquet:"query"`
	LatencyMS  int64     `parquet:"latency_ms"`
	Results    int64     `parquet:"results"`
	Attributes string    `parquet:"attributes"` // JSON string
}

// Attribute keys the handler lifts out of log records into dedicated
// Parquet columns.
const (
	AttrQuery   = "query"
	AttrLatency = "latency"
	AttrResults = "results"
)

// ParquetHandler is a slog.Handler that mirrors query and error logs
// into Parquet files for offline analysis of recall behavior.
type ParquetHandler struct {
	next      slog.Handler
	outputDir string
	mu        sync.Mutex
	buffer    []QueryRecord
	batchSize int
}

// NewParquetHandler creates a ParquetHandler writing under outputDir.
func NewParquetHandler(next slog.Handler, outputDir string) (*ParquetHandler, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	h := &ParquetHandler{
		next:      next,
		outputDir: outputDir,
		batchSize: 100,
		buffer:    make([]QueryRecord, 0, 100),
	}
	return h, nil
}

// Enabled implements slog.Handler.
func (h *ParquetHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler. Records below Info, or Info records
// without a query attribute, pass through without being persisted.
func (h *ParquetHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.next.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level < slog.LevelInfo {
		return nil
	}

	record := QueryRecord{
		ID:        uuid.New().String(),
		Timestamp: r.Time.UTC(),
		Level:     r.Level.String(),
		Message:   r.Message,
	}

	attrs := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case AttrQuery:
			record.Query = a.Value.String()
		case AttrLatency:
			if d, ok := a.Value.Any().(time.Duration); ok {
				record.LatencyMS = d.Milliseconds()
			}
		case AttrResults:
			record.Results = a.Value.Int64()
		default:
			attrs[a.Key] = a.Value.Any()
		}
		return true
	})
	if r.Level < slog.LevelError && record.Query == "" {
		return nil
	}

	attrsJSON, _ := json.Marshal(attrs)
	record.Attributes = string(attrsJSON)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buffer = append(h.buffer, record)
	if len(h.buffer) >= h.batchSize {
		return h.flush()
	}
	return nil
}

// Flush writes any buffered records out immediately.
func (h *ParquetHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flush()
}

// flush writes the current buffer to a new Parquet file.
// Caller must hold the lock.
func (h *ParquetHandler) flush() error {
	if len(h.buffer) == 0 {
		return nil
	}

	filename := fmt.Sprintf("recall_queries_%s_%d.parquet", time.Now().Format("20060102_150405"), time.Now().UnixNano())
	path := filepath.Join(h.outputDir, filename)

	if err := parquet.WriteFile(path, h.buffer); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write telemetry parquet file: %v\n", err)
		return err
	}

	h.buffer = h.buffer[:0]
	return nil
}

// WithAttrs implements slog.Handler. Child handlers batch on their
// own buffer.
func (h *ParquetHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ParquetHandler{
		next:      h.next.WithAttrs(attrs),
		outputDir: h.outputDir,
		batchSize: h.batchSize,
		buffer:    make([]QueryRecord, 0, h.batchSize),
	}
}

// WithGroup implements slog.Handler.
func (h *ParquetHandler) WithGroup(name string) slog.Handler {
	return &ParquetHandler{
		next:      h.next.WithGroup(name),
		outputDir: h.outputDir,
		batchSize: h.batchSize,
		buffer:    make([]QueryRecord, 0, h.batchSize),
	}
}
