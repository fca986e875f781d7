package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// checkVersion rejects catalog formats from another major version.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("unsupported catalog version %s (want %s.x.y)", v, SupportedMajor)
	}
	return nil
}

// validateCatalog performs all structural checks on a built catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c *Catalog) error {
	var errs []string

	if len(c.levels) == 0 {
		errs = append(errs, "catalog has no levels")
	}

	// IDs must run 1..N so that unlocking N+1 never skips a level.
	for i, l := range c.levels {
		if l.ID != i+1 {
			errs = append(errs, fmt.Sprintf("level IDs must be contiguous from 1: position %d has ID %d", i+1, l.ID))
			break
		}
	}

	seen := make(map[int]bool, len(c.levels))
	minQuestions := -1
	for _, l := range c.levels {
		if seen[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate level ID: %d", l.ID))
		}
		seen[l.ID] = true

		qs := c.questions[l.ID]
		if len(qs) == 0 {
			errs = append(errs, fmt.Sprintf("level %d has no questions", l.ID))
			continue
		}
		if minQuestions < 0 || len(qs) < minQuestions {
			minQuestions = len(qs)
		}

		for qi, q := range qs {
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("level %d question %d has fewer than 2 options", l.ID, qi+1))
			}
			correct := q.CorrectOptions()
			if correct == 0 {
				errs = append(errs, fmt.Sprintf("level %d question %d has no correct option", l.ID, qi+1))
			}
			if q.MaxCorrect > correct && correct > 0 {
				errs = append(errs, fmt.Sprintf("level %d question %d declares max_correct %d but has %d correct options", l.ID, qi+1, q.MaxCorrect, correct))
			}
		}
	}

	if c.passThreshold < 1 {
		errs = append(errs, fmt.Sprintf("pass threshold %d must be at least 1", c.passThreshold))
	} else if minQuestions > 0 && c.passThreshold > minQuestions {
		errs = append(errs, fmt.Sprintf("pass threshold %d exceeds the %d questions of the smallest level", c.passThreshold, minQuestions))
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
