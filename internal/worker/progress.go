package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 30

// Progress tracks and displays batch generation progress.
type Progress struct {
	startTime time.Time
	output    io.Writer
	unit      string
	total     int
	completed int
	failed    int
	mu        sync.RWMutex
	enabled   bool
}

// Snapshot is a point-in-time view of a Progress.
type Snapshot struct {
	Completed int
	Total     int
	Failed    int
	Elapsed   time.Duration
	Rate      float64 // completed per second
	ETA       time.Duration
}

// NewProgress creates a progress tracker that writes to stderr when enabled.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		total:     total,
		startTime: time.Now(),
		output:    os.Stderr,
		unit:      "maps",
		enabled:   enabled,
	}
}

// Update records the completion of a task.
func (p *Progress) Update(completed, total, failed int) {
	p.mu.Lock()
	p.completed = completed
	p.total = total
	p.failed = failed
	p.mu.Unlock()

	if p.enabled {
		p.Print()
	}
}

// Callback returns a ProgressFunc suitable for use with Pool.Config.
func (p *Progress) Callback() ProgressFunc {
	return p.Update
}

// Snapshot returns the current counters with derived rate and ETA.
func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	s := Snapshot{
		Completed: p.completed,
		Total:     p.total,
		Failed:    p.failed,
		Elapsed:   time.Since(p.startTime),
	}
	p.mu.RUnlock()

	if s.Completed > 0 && s.Elapsed > 0 {
		s.Rate = float64(s.Completed) / s.Elapsed.Seconds()
		if remaining := s.Total - s.Completed; remaining > 0 {
			s.ETA = time.Duration(float64(remaining)/s.Rate) * time.Second
		}
	}
	return s
}

// Print writes a single-line progress bar, overwriting the previous one.
func (p *Progress) Print() {
	s := p.Snapshot()

	filled := 0
	if s.Total > 0 {
		filled = s.Completed * barWidth / s.Total
	}
	if filled > barWidth {
		filled = barWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\r[%s%s] %d/%d %s",
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled),
		s.Completed, s.Total, p.unit)
	if s.Failed > 0 {
		fmt.Fprintf(&b, " (%d failed)", s.Failed)
	}
	fmt.Fprintf(&b, " - %.1f %s/sec", s.Rate, p.unit)
	switch {
	case s.Completed >= s.Total:
		fmt.Fprintf(&b, " - Done in %s", formatDuration(s.Elapsed))
	case s.ETA > 0:
		fmt.Fprintf(&b, " - ETA: %s", formatDuration(s.ETA))
	}
	b.WriteString("          ")

	fmt.Fprint(p.output, b.String())
}

// Done prints the final progress and a newline.
func (p *Progress) Done() {
	if p.enabled {
		p.Print()
		fmt.Fprintln(p.output)
	}
}

// Summary returns a one-line description of the completed work.
func (p *Progress) Summary() string {
	s := p.Snapshot()
	return fmt.Sprintf("Generated %d/%d %s (%d failed) in %s (%.1f %s/sec)",
		s.Completed-s.Failed, s.Total, p.unit, s.Failed, formatDuration(s.Elapsed), s.Rate, p.unit)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
