package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/zenquiz/internal/store"
)

const journalTimeout = 2 * time.Second

// recordAttempt journals a lifecycle transition of the active attempt.
// Journal failures are logged and never surface to the player.
func (g *Game) recordAttempt(action string) {
	if g.journal == nil || g.attempt == nil {
		return
	}
	data := store.AttemptEventData{
		AttemptID:  g.attemptID,
		LevelID:    g.attempt.Level.ID,
		LevelTitle: g.attempt.Level.Title,
		PlayerName: g.tracker.User().Name,
		Action:     action,
		Correct:    g.attempt.CorrectCount(),
		Total:      g.attempt.Total(),
	}
	if r, ok := g.attempt.Result(); ok {
		data.Passed = r.Passed
		data.ScoreEarned = r.ScoreEarned
	}

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if err := g.journal.AppendAttemptEvent(ctx, data); err != nil {
		g.logger.Warn("journal attempt event",
			zap.String("attempt", g.attemptID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (g *Game) recordAnswer(questionIndex, optionIndex int, correct bool) {
	if g.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	err := g.journal.AppendAnswerEvent(ctx, store.AnswerEventData{
		AttemptID:     g.attemptID,
		LevelID:       g.attempt.Level.ID,
		QuestionIndex: questionIndex,
		OptionIndex:   optionIndex,
		Correct:       correct,
	})
	if err != nil {
		g.logger.Warn("journal answer event",
			zap.String("attempt", g.attemptID),
			zap.Int("question", questionIndex),
			zap.Error(err),
		)
	}
}

// History returns this run's finished attempts, newest first, together with
// per-level aggregates. Both are empty when journaling is disabled.
func (g *Game) History(ctx context.Context, limit int) ([]store.AttemptRecord, []store.LevelStats, error) {
	if g.journal == nil {
		return nil, nil, nil
	}
	attempts, err := g.journal.RecentAttempts(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	stats, err := g.journal.LevelStats(ctx)
	if err != nil {
		return nil, nil, err
	}
	return attempts, stats, nil
}

// AttemptAnswers returns the answers journaled for attemptID in the order
// they were given.
func (g *Game) AttemptAnswers(ctx context.Context, attemptID string) ([]store.AnswerRecord, error) {
	if g.journal == nil {
		return nil, nil
	}
	return g.journal.AnswersForAttempt(ctx, attemptID)
}
