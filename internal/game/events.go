package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/zenquiz/internal/session"
	"github.com/abhisek/zenquiz/internal/store"
)

// StartSession names the user and moves to level select.
func (g *Game) StartSession(name string) error {
	if g.phase != PhaseWelcome {
		return fmt.Errorf("start session in %s: %w", g.phase, ErrWrongPhase)
	}
	g.tracker.Rename(name)
	g.phase = PhaseLevelSelect
	g.logger.Info("session started", zap.String("player", g.tracker.User().Name))
	return nil
}

// SelectLevel starts a fresh attempt at levelID.
func (g *Game) SelectLevel(levelID int) error {
	if g.phase != PhaseLevelSelect {
		return fmt.Errorf("select level in %s: %w", g.phase, ErrWrongPhase)
	}
	if _, err := g.cat.Level(levelID); err != nil {
		return err
	}
	if !g.tracker.IsUnlocked(levelID) {
		return fmt.Errorf("level %d: %w", levelID, ErrLevelLocked)
	}

	a, err := session.NewAttemptFromCatalog(g.cat, levelID)
	if err != nil {
		return fmt.Errorf("start level %d: %w", levelID, err)
	}
	a.SetAutoAdvanceDelay(g.delay)

	g.attempt = a
	g.attemptID = g.newID()
	g.phase = PhasePlaying
	g.logger.Info("level started",
		zap.String("attempt", g.attemptID),
		zap.Int("level_id", levelID),
	)
	g.recordAttempt(store.ActionStart)
	return nil
}

// SubmitAnswer answers the current question. A correct answer returns the
// auto-advance ticket the caller should schedule.
func (g *Game) SubmitAnswer(optionIndex int) (*session.AutoAdvance, error) {
	if g.phase != PhasePlaying {
		return nil, fmt.Errorf("submit answer in %s: %w", g.phase, ErrWrongPhase)
	}
	idx := g.attempt.CurrentIndex()
	ticket, err := g.attempt.SubmitAnswer(optionIndex)
	if err != nil {
		return nil, err
	}

	opt, _ := g.attempt.Answer(idx)
	g.recordAnswer(idx, optionIndex, opt.Correct)
	return ticket, nil
}

// GoNext moves forward, finishing the level from the last question when
// every question is answered. session.ErrNotReady is returned otherwise.
func (g *Game) GoNext() error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("next in %s: %w", g.phase, ErrWrongPhase)
	}
	if err := g.attempt.GoNext(); err != nil {
		return err
	}
	g.checkFinished()
	return nil
}

// GoPrev moves back one question.
func (g *Game) GoPrev() error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("prev in %s: %w", g.phase, ErrWrongPhase)
	}
	g.attempt.GoPrev()
	return nil
}

// FireAutoAdvance delivers an expired auto-advance ticket. Tickets that no
// longer match the game state are ignored and false is returned.
func (g *Game) FireAutoAdvance(t session.AutoAdvance) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if !g.attempt.FireAutoAdvance(t) {
		return false
	}
	g.checkFinished()
	return true
}

// ExitLevel abandons the active attempt and returns to level select.
func (g *Game) ExitLevel() error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("exit level in %s: %w", g.phase, ErrWrongPhase)
	}
	g.attempt.CancelAutoAdvance()
	g.recordAttempt(store.ActionAbort)
	g.logger.Info("level abandoned", zap.String("attempt", g.attemptID))
	g.discardAttempt()
	g.phase = PhaseLevelSelect
	return nil
}

// RetryLevel leaves a failed result for level select. Progression is not
// touched.
func (g *Game) RetryLevel() error {
	r, err := g.result()
	if err != nil {
		return err
	}
	if r.Passed {
		return fmt.Errorf("retry level %d: %w", r.LevelID, ErrPassed)
	}
	g.discardAttempt()
	g.phase = PhaseLevelSelect
	return nil
}

// ContinueAfterPass applies a passed result to the tracker and moves to the
// ending after the final level, otherwise back to level select. It reports
// whether the final level was completed.
func (g *Game) ContinueAfterPass() (bool, error) {
	r, err := g.result()
	if err != nil {
		return false, err
	}
	if !r.Passed {
		return false, fmt.Errorf("continue after level %d: %w", r.LevelID, ErrNotPassed)
	}

	final := g.tracker.ApplyLevelResult(r)
	g.logger.Info("level passed",
		zap.Int("level_id", r.LevelID),
		zap.Int("score_earned", r.ScoreEarned),
		zap.Int("total_score", g.tracker.User().TotalScore),
		zap.Bool("final", final),
	)
	g.discardAttempt()
	if final {
		g.phase = PhaseEnding
	} else {
		g.phase = PhaseLevelSelect
	}
	return final, nil
}

// ReturnToMenu leaves the ending for level select.
func (g *Game) ReturnToMenu() error {
	if g.phase != PhaseEnding {
		return fmt.Errorf("return to menu in %s: %w", g.phase, ErrWrongPhase)
	}
	g.phase = PhaseLevelSelect
	return nil
}

func (g *Game) result() (session.LevelResult, error) {
	if g.phase != PhaseResult {
		return session.LevelResult{}, fmt.Errorf("result in %s: %w", g.phase, ErrWrongPhase)
	}
	r, ok := g.attempt.Result()
	if !ok {
		return session.LevelResult{}, errors.New("attempt finished without a result")
	}
	return r, nil
}

// checkFinished moves to the result phase once the attempt has finished.
func (g *Game) checkFinished() {
	if !g.attempt.Finished() {
		return
	}
	r, _ := g.attempt.Result()
	if prev, ok := g.best[r.LevelID]; !ok || r.ScoreEarned > prev {
		g.best[r.LevelID] = r.ScoreEarned
	}
	g.phase = PhaseResult
	g.logger.Info("level finished",
		zap.String("attempt", g.attemptID),
		zap.Int("level_id", r.LevelID),
		zap.Int("correct", r.Correct),
		zap.Int("total", r.Total),
		zap.Bool("passed", r.Passed),
	)
	g.recordAttempt(store.ActionFinish)
}

func (g *Game) discardAttempt() {
	g.attempt = nil
	g.attemptID = ""
}
