// Package indicator shows that the catalog is being probed.
package indicator

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner draws a counting spinner, for terminals.
type Spinner struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

func (s *Spinner) Start(label string) {
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(s.w),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (s *Spinner) Tick() {
	if s.bar != nil {
		_ = s.bar.Add(1)
	}
}

func (s *Spinner) Stop() {
	if s.bar != nil {
		_ = s.bar.Finish()
		s.bar = nil
	}
}

// Log reports progress through slog, for the bot process.
type Log struct {
	mu    sync.Mutex
	label string
	count int
	start time.Time
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Start(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.label, l.count, l.start = label, 0, time.Now()
	slog.Info("loading started", slog.String("what", label))
}

func (l *Log) Tick() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.count++
	slog.Debug("loading progress", slog.String("what", l.label), slog.Int("done", l.count))
}

func (l *Log) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	slog.Info("loading finished", slog.String("what", l.label), slog.Int("done", l.count), slog.Duration("elapsed", time.Since(l.start)))
}
