package ports

import (
	"petverse/internal/domain/game"
	"petverse/internal/domain/task"
)

type EngineMetrics interface {
	RecordTick(report game.TickReport)
	RecordTaskCompleted()
	RecordTaskRejected(code task.FailureCode)
	RecordNarrativeFallback(kind game.NarrativeKind)
	RecordConflict()
}
