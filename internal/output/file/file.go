package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

const (
	defaultBufSize = 64 * 1024 // 64KB
	maxRotated     = 10
)

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize sets the file size (bytes) at which rotation triggers.
// 0 (default) disables rotation.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// Record is one archived run.
type Record struct {
	RunID       string         `json:"run_id,omitempty"`
	Source      string         `json:"source,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
	Payload     output.Payload `json:"payload"`
}

// Output appends one JSON line per message to an archive file, with
// optional size-based rotation.
type Output struct {
	w       *bufio.Writer
	f       *os.File
	mu      sync.Mutex
	path    string
	maxSize int64 // 0 = no rotation
	written int64
}

// New opens (or creates) the archive at path.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{path: path}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.openFile(); err != nil {
		return nil, err
	}
	return o, nil
}

// Write appends the message as a Record line and flushes it.
func (o *Output) Write(_ context.Context, msg model.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := json.Marshal(Record{
		RunID:       msg.RunID,
		Source:      msg.Source,
		GeneratedAt: msg.GeneratedAt,
		Payload:     output.FormatMessage(msg),
	})
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')

	if o.maxSize > 0 && o.written > 0 && o.written+int64(len(data)) > o.maxSize {
		if err := o.rotate(); err != nil {
			return fmt.Errorf("file output: rotate: %w", err)
		}
	}

	n, err := o.w.Write(data)
	o.written += int64(n)
	if err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	if err := o.w.Flush(); err != nil {
		return fmt.Errorf("file output: flush: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}

func (o *Output) openFile() error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: stat %s: %w", o.path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, defaultBufSize)
	o.written = info.Size()
	return nil
}

// rotate shifts {path}.N to {path}.N+1, moves the current file to {path}.1
// and opens a fresh one.
func (o *Output) rotate() error {
	if err := o.w.Flush(); err != nil {
		return err
	}
	if err := o.f.Close(); err != nil {
		return err
	}
	for i := maxRotated - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", o.path, i), fmt.Sprintf("%s.%d", o.path, i+1)) // may not exist
	}
	if err := os.Rename(o.path, o.path+".1"); err != nil {
		return err
	}
	o.written = 0
	return o.openFile()
}
