package model

import (
	"fmt"
	"strings"
	"time"
)

// DownloadTask records a single download invocation
type DownloadTask struct {
	ID         string
	URL        string
	OutputDir  string
	Selector   string // rendered yt-dlp format selector
	AudioOnly  bool
	Status     TaskStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
}

// Elapsed returns how long the task ran, zero while it is still running
func (dt *DownloadTask) Elapsed() time.Duration {
	if dt.StartedAt.IsZero() || dt.FinishedAt.IsZero() {
		return 0
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetElapsedString returns the elapsed time formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetElapsedString() string {
	secs := int(dt.Elapsed().Seconds())
	if secs <= 0 {
		return "—"
	}

	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns a compact label for the task: host and path of the URL
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.URL == "" {
		return ""
	}
	title := dt.URL
	for _, prefix := range []string{"https://", "http://", "www."} {
		title = strings.TrimPrefix(title, prefix)
	}
	return title
}
