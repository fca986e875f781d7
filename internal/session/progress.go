package session

import "strings"

// DefaultUserName is used when the player leaves the name blank.
const DefaultUserName = "Wandering Monk"

// User is the cross-level state for one run of the app.
type User struct {
	Name          string
	TotalScore    int
	UnlockedLevel int
}

// NewUser creates a user with level 1 unlocked and no score.
func NewUser(name string) User {
	return User{
		Name:          normalizeName(name),
		UnlockedLevel: 1,
	}
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultUserName
	}
	return name
}

// Tracker applies finished level outcomes to the user. Score and unlocked
// level never decrease, and a level unlocks only after the one before it
// has been passed.
type Tracker struct {
	user       User
	maxLevelID int
}

// NewTracker creates a tracker for user over a catalog whose final level is
// maxLevelID.
func NewTracker(user User, maxLevelID int) *Tracker {
	if user.UnlockedLevel < 1 {
		user.UnlockedLevel = 1
	}
	return &Tracker{user: user, maxLevelID: maxLevelID}
}

// User returns a copy of the current user state.
func (t *Tracker) User() User {
	return t.user
}

// Rename changes the display name, falling back to DefaultUserName.
func (t *Tracker) Rename(name string) {
	t.user.Name = normalizeName(name)
}

// ApplyResult applies a finished attempt at levelID. A pass adds the score
// and unlocks the next level; a fail changes nothing. Results for levels
// that are not unlocked are ignored. Returns true when the final level was
// passed.
func (t *Tracker) ApplyResult(levelID int, passed bool, scoreEarned int) bool {
	if !passed || !t.IsUnlocked(levelID) {
		return false
	}
	if scoreEarned > 0 {
		t.user.TotalScore += scoreEarned
	}
	t.user.UnlockedLevel = max(t.user.UnlockedLevel, levelID+1)
	return levelID == t.maxLevelID
}

// ApplyLevelResult is ApplyResult for a LevelResult.
func (t *Tracker) ApplyLevelResult(r LevelResult) bool {
	return t.ApplyResult(r.LevelID, r.Passed, r.ScoreEarned)
}

// IsUnlocked reports whether the user may enter levelID.
func (t *Tracker) IsUnlocked(levelID int) bool {
	return levelID >= 1 && levelID <= t.user.UnlockedLevel
}

// IsPassed reports whether levelID has been passed.
func (t *Tracker) IsPassed(levelID int) bool {
	return levelID >= 1 && levelID < t.user.UnlockedLevel
}

// AllComplete reports whether every level has been passed.
func (t *Tracker) AllComplete() bool {
	return t.maxLevelID > 0 && t.user.UnlockedLevel > t.maxLevelID
}
