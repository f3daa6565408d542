package inmemory

import (
	"sync"

	"petverse/internal/domain/game"
	"petverse/internal/domain/task"
)

type Snapshot struct {
	Ticks              uint64            `json:"ticks"`
	Deaths             uint64            `json:"deaths"`
	Mutations          uint64            `json:"mutations"`
	Events             uint64            `json:"events"`
	Interactions       uint64            `json:"interactions"`
	TasksGenerated     uint64            `json:"tasks_generated"`
	TasksExpired       uint64            `json:"tasks_expired"`
	TasksCompleted     uint64            `json:"tasks_completed"`
	TasksRejected      uint64            `json:"tasks_rejected"`
	Conflicts          uint64            `json:"conflicts"`
	RejectedByCode     map[string]uint64 `json:"rejected_by_code"`
	NarrativeFallbacks map[string]uint64 `json:"narrative_fallbacks"`
}

type Recorder struct {
	mu        sync.Mutex
	totals    game.TickReport
	ticks     uint64
	completed uint64
	conflict  uint64
	rejected  map[string]uint64
	fallbacks map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		rejected:  map[string]uint64{},
		fallbacks: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick(rep game.TickReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.totals.Deaths += rep.Deaths
	r.totals.Mutations += rep.Mutations
	r.totals.Events += rep.Events
	r.totals.Interactions += rep.Interactions
	r.totals.TasksGenerated += rep.TasksGenerated
	r.totals.TasksExpired += rep.TasksExpired
}

func (r *Recorder) RecordTaskCompleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed++
}

func (r *Recorder) RecordTaskRejected(code task.FailureCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected[string(code)]++
}

func (r *Recorder) RecordNarrativeFallback(kind game.NarrativeKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks[string(kind)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Ticks:              r.ticks,
		Deaths:             uint64(r.totals.Deaths),
		Mutations:          uint64(r.totals.Mutations),
		Events:             uint64(r.totals.Events),
		Interactions:       uint64(r.totals.Interactions),
		TasksGenerated:     uint64(r.totals.TasksGenerated),
		TasksExpired:       uint64(r.totals.TasksExpired),
		TasksCompleted:     r.completed,
		Conflicts:          r.conflict,
		RejectedByCode:     make(map[string]uint64, len(r.rejected)),
		NarrativeFallbacks: make(map[string]uint64, len(r.fallbacks)),
	}
	for k, v := range r.rejected {
		out.RejectedByCode[k] = v
		out.TasksRejected += v
	}
	for k, v := range r.fallbacks {
		out.NarrativeFallbacks[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
