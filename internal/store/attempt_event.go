package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"
)

// eventRepo implements EventRepo over the ent SQL driver.
type eventRepo struct {
	drv    *entsql.Driver
	seq    *sequenceCounter
	logger *zap.Logger
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(tableAttemptEvents).
		Columns("sequence", "timestamp", "attempt_id", "level_id", "level_title",
			"player", "action", "correct", "total", "passed", "score_earned").
		Values(seqNum, time.Now().UTC(), data.AttemptID, data.LevelID, data.LevelTitle,
			data.PlayerName, data.Action, data.Correct, data.Total, data.Passed, data.ScoreEarned).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	r.logger.Debug("attempt event",
		zap.Int64("sequence", seqNum),
		zap.String("attempt", data.AttemptID),
		zap.String("action", data.Action),
	)
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(tableAnswerEvents).
		Columns("sequence", "timestamp", "attempt_id", "level_id",
			"question_index", "option_index", "correct").
		Values(seqNum, time.Now().UTC(), data.AttemptID, data.LevelID,
			data.QuestionIndex, data.OptionIndex, data.Correct).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error) {
	sel := builder().
		Select("sequence", "timestamp", "attempt_id", "level_id", "level_title",
			"player", "action", "correct", "total", "passed", "score_earned").
		From(entsql.Table(tableAttemptEvents)).
		Where(entsql.EQ("action", ActionFinish)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		if err := rows.Scan(
			&rec.Sequence, &rec.Timestamp, &rec.AttemptID, &rec.LevelID, &rec.LevelTitle,
			&rec.PlayerName, &rec.Action, &rec.Correct, &rec.Total, &rec.Passed, &rec.ScoreEarned,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AnswersForAttempt(ctx context.Context, attemptID string) ([]AnswerRecord, error) {
	query, args := builder().
		Select("sequence", "timestamp", "attempt_id", "level_id",
			"question_index", "option_index", "correct").
		From(entsql.Table(tableAnswerEvents)).
		Where(entsql.EQ("attempt_id", attemptID)).
		OrderBy("sequence").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		if err := rows.Scan(
			&rec.Sequence, &rec.Timestamp, &rec.AttemptID, &rec.LevelID,
			&rec.QuestionIndex, &rec.OptionIndex, &rec.Correct,
		); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LevelStats(ctx context.Context) ([]LevelStats, error) {
	query, args := builder().
		Select(
			"level_id",
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As(entsql.Sum("passed"), "passes"),
			entsql.As(entsql.Max("score_earned"), "best_score"),
		).
		From(entsql.Table(tableAttemptEvents)).
		Where(entsql.EQ("action", ActionFinish)).
		GroupBy("level_id").
		OrderBy("level_id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query level stats: %w", err)
	}
	defer rows.Close()

	var out []LevelStats
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Passes, &st.BestScore); err != nil {
			return nil, fmt.Errorf("scan level stats: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate level stats: %w", err)
	}
	return out, nil
}
