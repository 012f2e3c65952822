package download

import (
	"context"

	"github.com/ytget/yoinktube/internal/model"
)

// Runner performs the actual retrieval. Any returned error is treated as a
// single undifferentiated failure.
type Runner interface {
	Download(ctx context.Context, opts Options, url string) error
}

// PreferencesSaver persists the selection used by a successful download
type PreferencesSaver interface {
	Save(prefs model.Preferences)
}

// HistoryRecorder keeps a log of finished downloads
type HistoryRecorder interface {
	Record(ctx context.Context, task *model.DownloadTask) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadTask, error)
	InProgress() bool
}
