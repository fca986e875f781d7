package store

import (
	"context"
	"time"
)

const (
	tableAttemptEvents = "attempt_events"
	tableAnswerEvents  = "answer_events"
)

// Attempt lifecycle actions.
const (
	ActionStart  = "start"
	ActionFinish = "finish"
	ActionAbort  = "abort"
)

// AttemptEventData captures one lifecycle transition of a level attempt.
type AttemptEventData struct {
	AttemptID   string
	LevelID     int
	LevelTitle  string
	PlayerName  string
	Action      string // start, finish, abort
	Correct     int
	Total       int
	Passed      bool
	ScoreEarned int
}

// AnswerEventData captures a single submitted answer.
type AnswerEventData struct {
	AttemptID     string
	LevelID       int
	QuestionIndex int
	OptionIndex   int
	Correct       bool
}

// AttemptRecord is a journaled attempt event read back from the store.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// AnswerRecord is a journaled answer event read back from the store.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LevelStats aggregates finished attempts for one level.
type LevelStats struct {
	LevelID   int
	Attempts  int
	Passes    int
	BestScore int
}

// EventRepo provides append and query access to the attempt journal.
type EventRepo interface {
	// AppendAttemptEvent records an attempt lifecycle transition.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentAttempts returns the latest finished attempts, newest first.
	// limit <= 0 means no limit.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error)

	// AnswersForAttempt returns the answers of one attempt in submission order.
	AnswersForAttempt(ctx context.Context, attemptID string) ([]AnswerRecord, error)

	// LevelStats returns per-level aggregates over finished attempts,
	// ordered by level id.
	LevelStats(ctx context.Context) ([]LevelStats, error)
}
