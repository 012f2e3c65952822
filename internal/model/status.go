package model

// TaskStatus represents the state of a download invocation
type TaskStatus string

const (
	// TaskStatusIdle means nothing has been started yet
	TaskStatusIdle TaskStatus = "Idle"

	// TaskStatusDownloading means yt-dlp is running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the download finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the download failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true while the download is in flight
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
