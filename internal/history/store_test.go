package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ytget/yoinktube/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	first := &model.DownloadTask{
		ID:         "task-1",
		URL:        "https://x/1",
		OutputDir:  "/tmp/out",
		Selector:   "bestaudio/best",
		AudioOnly:  true,
		Status:     model.TaskStatusCompleted,
		StartedAt:  base,
		FinishedAt: base.Add(time.Minute),
	}
	second := &model.DownloadTask{
		ID:         "task-2",
		URL:        "https://x/2",
		OutputDir:  "/tmp/out",
		Selector:   "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best",
		Status:     model.TaskStatusCompleted,
		StartedAt:  base.Add(2 * time.Minute),
		FinishedAt: base.Add(5 * time.Minute),
	}

	for _, task := range []*model.DownloadTask{first, second} {
		if err := store.Record(ctx, task); err != nil {
			t.Fatalf("failed to record %s: %v", task.ID, err)
		}
	}

	tasks, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	if tasks[0].ID != "task-2" || tasks[1].ID != "task-1" {
		t.Errorf("expected newest first, got %s then %s", tasks[0].ID, tasks[1].ID)
	}

	got := tasks[1]
	if got.URL != first.URL || got.Selector != first.Selector || !got.AudioOnly {
		t.Errorf("unexpected round trip: %+v", got)
	}
	if got.Status != model.TaskStatusCompleted {
		t.Errorf("expected status Completed, got %s", got.Status)
	}
	if !got.StartedAt.Equal(first.StartedAt) || !got.FinishedAt.Equal(first.FinishedAt) {
		t.Errorf("timestamps changed: %v/%v", got.StartedAt, got.FinishedAt)
	}
	if got.Elapsed() != time.Minute {
		t.Errorf("expected elapsed 1m, got %v", got.Elapsed())
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		task := &model.DownloadTask{
			ID:         "task-" + string(rune('a'+i)),
			URL:        "https://x",
			OutputDir:  "/tmp",
			Selector:   "best",
			Status:     model.TaskStatusCompleted,
			StartedAt:  base,
			FinishedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := store.Record(ctx, task); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	tasks, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "task-e" {
		t.Errorf("expected newest task first, got %s", tasks[0].ID)
	}
}

func TestRecordDuplicateID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	task := &model.DownloadTask{ID: "task-dup", URL: "https://x", OutputDir: "/tmp", Selector: "best", Status: model.TaskStatusCompleted}
	if err := store.Record(ctx, task); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if err := store.Record(ctx, task); err == nil {
		t.Error("expected error recording duplicate ID")
	}
}

func TestRecordNilTask(t *testing.T) {
	store := openTestStore(t)
	if err := store.Record(context.Background(), nil); err == nil {
		t.Error("expected error for nil task")
	}
}

func TestRecentEmpty(t *testing.T) {
	store := openTestStore(t)

	tasks, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}
