package task

import (
	"errors"
	"fmt"
	"strings"
)

var ErrTaskNotFound = errors.New("task not found")

type FailureCode string

const (
	FailureCompanionDead    FailureCode = "companion_dead"
	FailureAlreadyCompleted FailureCode = "already_completed"
	FailureExpired          FailureCode = "expired"
	FailureAlreadyStarted   FailureCode = "already_started"
	FailureNotConfirmed     FailureCode = "not_confirmed"
	FailureMissingKeywords  FailureCode = "missing_keywords"
	FailureTimerNotStarted  FailureCode = "timer_not_started"
	FailureTimerRunning     FailureCode = "timer_running"
	FailureMissedWindow     FailureCode = "missed_window"
	FailureUnknownStrategy  FailureCode = "unknown_strategy"
)

// Failure is a rejected precondition. It never carries partial state changes.
type Failure struct {
	Code            FailureCode `json:"code"`
	Reason          string      `json:"reason"`
	MissingKeywords []string    `json:"missing_keywords,omitempty"`
}

func (f *Failure) Error() string {
	return f.Reason
}

func fail(code FailureCode, format string, args ...any) *Failure {
	return &Failure{Code: code, Reason: fmt.Sprintf(format, args...)}
}

func missingKeywords(missing []string) *Failure {
	return &Failure{
		Code:            FailureMissingKeywords,
		Reason:          "message is missing keywords: " + strings.Join(missing, ", "),
		MissingKeywords: missing,
	}
}
