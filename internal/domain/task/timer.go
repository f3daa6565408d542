package task

import (
	"sort"
	"time"
)

type Timer struct {
	TaskID          string        `json:"task_id"`
	StartedAt       time.Time     `json:"started_at"`
	DurationSeconds int           `json:"duration_seconds"`
	Window          time.Duration `json:"window"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
}

func (t Timer) Duration() time.Duration {
	return time.Duration(t.DurationSeconds) * time.Second
}

func (t Timer) DueAt() time.Time {
	return t.StartedAt.Add(t.Duration())
}

type Progress struct {
	TaskID      string        `json:"task_id"`
	Elapsed     time.Duration `json:"elapsed"`
	Remaining   time.Duration `json:"remaining"`
	Complete    bool          `json:"complete"`
	CanComplete bool          `json:"can_complete"`
}

// Timers holds at most one countdown per task id.
type Timers map[string]Timer

// Start replaces any prior timer for taskID.
func (ts Timers) Start(taskID string, durationSeconds int, window time.Duration, now time.Time) Timer {
	if window <= 0 {
		window = DefaultCompletionWindow
	}
	t := Timer{
		TaskID:          taskID,
		StartedAt:       now,
		DurationSeconds: durationSeconds,
		Window:          window,
	}
	ts[taskID] = t
	return t
}

func (ts Timers) Progress(taskID string, now time.Time) (Progress, bool) {
	t, ok := ts[taskID]
	if !ok {
		return Progress{}, false
	}
	return t.Progress(now), true
}

func (t Timer) Progress(now time.Time) Progress {
	elapsed := now.Sub(t.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := t.Duration() - elapsed
	if remaining < 0 {
		remaining = 0
	}
	complete := elapsed >= t.Duration()
	return Progress{
		TaskID:      t.TaskID,
		Elapsed:     elapsed,
		Remaining:   remaining,
		Complete:    complete,
		CanComplete: complete && elapsed <= t.Duration()+t.Window,
	}
}

// Sweep stamps the completion instant on timers that have crossed their duration
// and returns their task ids. Timers are never removed here.
func (ts Timers) Sweep(now time.Time) []string {
	var done []string
	for id, t := range ts {
		if t.CompletedAt != nil || now.Before(t.DueAt()) {
			continue
		}
		at := t.DueAt()
		t.CompletedAt = &at
		ts[id] = t
		done = append(done, id)
	}
	sort.Strings(done)
	return done
}

func (ts Timers) Release(taskID string) {
	delete(ts, taskID)
}

func (ts Timers) Clone() Timers {
	out := make(Timers, len(ts))
	for id, t := range ts {
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			t.CompletedAt = &at
		}
		out[id] = t
	}
	return out
}

// List returns timers ordered by start time.
func (ts Timers) List() []Timer {
	out := make([]Timer, 0, len(ts))
	for _, t := range ts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].TaskID < out[j].TaskID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
