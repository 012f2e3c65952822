package download

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/yoinktube/internal/model"
)

// Service handles download operations
type Service struct {
	runner   Runner
	prefs    PreferencesSaver
	history  HistoryRecorder // optional
	log      zerolog.Logger
	mu       sync.Mutex
	inFlight bool
	now      func() time.Time
}

// NewService creates a new download service. history may be nil.
func NewService(runner Runner, prefs PreferencesSaver, history HistoryRecorder, log zerolog.Logger) *Service {
	return &Service{
		runner:  runner,
		prefs:   prefs,
		history: history,
		log:     log.With().Str("component", "download").Logger(),
		now:     time.Now,
	}
}

// InProgress reports whether a download is currently running
func (s *Service) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Download builds the options for req, runs the download synchronously and,
// only if it succeeded, saves the selection as the new preferences.
func (s *Service) Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadTask, error) {
	opts, err := Build(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("rejected download request")
		return nil, err
	}

	if !s.acquire() {
		return nil, ErrDownloadInProgress
	}
	defer s.release()

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       req.URL,
		OutputDir: req.OutputDir,
		Selector:  opts.Format,
		AudioOnly: req.AudioOnly,
		Status:    model.TaskStatusDownloading,
		StartedAt: s.now(),
	}

	s.log.Info().
		Str("task", task.ID).
		Str("url", req.URL).
		Bool("audio_only", req.AudioOnly).
		Msg("download started")

	runErr := s.runner.Download(ctx, opts, req.URL)
	task.FinishedAt = s.now()

	if runErr != nil {
		task.Status = model.TaskStatusError
		task.LastError = runErr.Error()
		s.log.Error().Err(runErr).Str("task", task.ID).Msg("download failed")
		return task, &DownloadFailure{URL: req.URL, Err: runErr}
	}

	task.Status = model.TaskStatusCompleted
	s.prefs.Save(req.Preferences())

	if s.history != nil {
		if err := s.history.Record(ctx, task); err != nil {
			s.log.Warn().Err(err).Str("task", task.ID).Msg("failed to record download history")
		}
	}

	s.log.Info().
		Str("task", task.ID).
		Dur("elapsed", task.Elapsed()).
		Msg("download completed")

	return task, nil
}

func (s *Service) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *Service) release() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// ErrorMessage returns the text shown to the user for a failed download
func ErrorMessage(err error) string {
	var df *DownloadFailure
	if errors.As(err, &df) {
		return "An error occurred: " + df.Err.Error()
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		if ve.Field == FieldURL || ve.Field == FieldOutputDir {
			return "URL and Output Directory are required"
		}
		return "Invalid selection: " + ve.Error()
	}
	return "An error occurred: " + err.Error()
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
