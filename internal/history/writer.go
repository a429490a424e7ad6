package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

const (
	defaultFlushInterval = 10 * time.Second
	defaultBufferSize    = 256
)

// WriterConfig configures a Writer.
type WriterConfig struct {
	// Path is the JSONL file records are appended to. Required.
	Path string

	// FlushInterval is how often buffered records reach the file even
	// when the buffer is not full. Default 10s.
	FlushInterval time.Duration

	// BufferSize is the channel capacity between Record and the flush
	// loop. When the buffer is full records are dropped and counted
	// rather than blocking the game loop. Default 256.
	BufferSize int

	Logger *log.Logger
	Clock  quartz.Clock
}

// Writer appends round records to a JSONL file. Records are accepted on
// a buffered channel and written by a background loop on clock ticks
// and on Close.
type Writer struct {
	cfg    WriterConfig
	file   *os.File
	out    *bufio.Writer
	logger *log.Logger

	records chan Record
	stop    chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	dropped int
	written int
}

// NewWriter opens (creating or appending to) the configured file and
// starts the flush loop.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if cfg.Path == "" {
		return nil, errors.New("history: Path is required")
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create dir: %w", err)
		}
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", cfg.Path, err)
	}

	w := &Writer{
		cfg:     cfg,
		file:    file,
		out:     bufio.NewWriter(file),
		logger:  cfg.Logger.WithPrefix("history"),
		records: make(chan Record, cfg.BufferSize),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Record queues one record for writing. It never blocks; when the
// buffer is full the record is dropped and counted.
func (w *Writer) Record(rec Record) {
	select {
	case w.records <- rec:
	default:
		w.mu.Lock()
		w.dropped++
		w.mu.Unlock()
	}
}

// Written returns how many records have reached the file so far.
func (w *Writer) Written() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Dropped returns how many records were discarded because the buffer
// was full.
func (w *Writer) Dropped() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

// Close drains pending records, flushes and closes the file. The writer
// must not be used afterwards.
func (w *Writer) Close() error {
	close(w.stop)
	<-w.done

	var errs []error
	for {
		select {
		case rec := <-w.records:
			if err := w.write(rec); err != nil {
				errs = append(errs, err)
			}
		default:
			if err := w.out.Flush(); err != nil {
				errs = append(errs, fmt.Errorf("history: flush: %w", err))
			}
			if err := w.file.Close(); err != nil {
				errs = append(errs, fmt.Errorf("history: close: %w", err))
			}
			if w.dropped > 0 {
				w.logger.Warn("records dropped due to full buffer", "dropped", w.dropped)
			}
			return errors.Join(errs...)
		}
	}
}

func (w *Writer) run() {
	defer close(w.done)

	ticker := w.cfg.Clock.NewTicker(w.cfg.FlushInterval, "history-flush")
	defer ticker.Stop()

	for {
		select {
		case rec := <-w.records:
			if err := w.write(rec); err != nil {
				w.logger.Error("failed to write record", "error", err)
			}
		case <-ticker.C:
			if err := w.out.Flush(); err != nil {
				w.logger.Error("failed to flush records", "error", err)
			}
		case <-w.stop:
			return
		}
	}
}

func (w *Writer) write(rec Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal record %s: %w", rec.ID, err)
	}
	if _, err := w.out.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("history: write record %s: %w", rec.ID, err)
	}
	w.mu.Lock()
	w.written++
	w.mu.Unlock()
	return nil
}
