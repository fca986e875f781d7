package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalDoc = `{
  "version": "v1.2.0",
  "pass_threshold": 1,
  "levels": [
    {"id": 2, "title": "Level 2: Second", "questions": [
      {"prompt": "b?", "options": [{"text": "x", "correct": true}, {"text": "y", "correct": false}]}
    ]},
    {"id": 1, "title": "Level 1: First", "questions": [
      {"prompt": "a?", "options": [{"text": "x", "correct": false}, {"text": "y", "correct": true}]},
      {"prompt": "c?", "max_correct": 2, "options": [{"text": "x", "correct": true}, {"text": "y", "correct": true}]}
    ]}
  ]
}`

func TestDefault_Valid(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog has no levels")
	}
	if c.PassThreshold() != DefaultPassThreshold {
		t.Errorf("PassThreshold = %d, want %d", c.PassThreshold(), DefaultPassThreshold)
	}
	if c.MaxLevelID() != c.Len() {
		t.Errorf("MaxLevelID = %d, want %d", c.MaxLevelID(), c.Len())
	}
}

func TestDefault_EveryLevelHasFixedQuestions(t *testing.T) {
	c := Default()
	for _, l := range c.Levels() {
		first, err := c.QuestionsForLevel(l.ID)
		if err != nil {
			t.Fatalf("QuestionsForLevel(%d): %v", l.ID, err)
		}
		if len(first) == 0 {
			t.Errorf("level %d has no questions", l.ID)
		}
		second, _ := c.QuestionsForLevel(l.ID)
		if len(first) != len(second) {
			t.Fatalf("level %d question count changed between calls", l.ID)
		}
		for i := range first {
			if first[i].Prompt != second[i].Prompt {
				t.Errorf("level %d question %d not deterministic", l.ID, i)
			}
		}
	}
}

func TestParse_SortsLevelsAndDefaultsMaxCorrect(t *testing.T) {
	c, err := Parse([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	levels := c.Levels()
	if levels[0].ID != 1 || levels[1].ID != 2 {
		t.Errorf("levels not in ID order: %+v", levels)
	}
	if c.Version() != "v1.2.0" {
		t.Errorf("Version = %q", c.Version())
	}

	qs, _ := c.QuestionsForLevel(1)
	if qs[0].MaxCorrect != 1 {
		t.Errorf("MaxCorrect default = %d, want 1", qs[0].MaxCorrect)
	}
	if !qs[1].MultipleCorrect() {
		t.Error("expected second question to allow multiple correct answers")
	}
}

func TestQuestionsForLevel_ReturnsCopy(t *testing.T) {
	c, err := Parse([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	qs, _ := c.QuestionsForLevel(1)
	qs[0] = Question{Prompt: "mutated"}

	again, _ := c.QuestionsForLevel(1)
	if again[0].Prompt != "a?" {
		t.Errorf("catalog was mutated through returned slice: %q", again[0].Prompt)
	}
}

func TestLevel_Unknown(t *testing.T) {
	c := Default()
	if _, err := c.Level(99); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Level(99) err = %v, want ErrUnknownLevel", err)
	}
	if _, err := c.QuestionsForLevel(0); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("QuestionsForLevel(0) err = %v, want ErrUnknownLevel", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "not json",
			doc:  `{`,
			want: "invalid JSON",
		},
		{
			name: "missing levels",
			doc:  `{"version": "v1.0.0"}`,
			want: "schema validation failed",
		},
		{
			name: "unknown field",
			doc:  `{"version": "v1.0.0", "shuffle": true, "levels": []}`,
			want: "schema validation failed",
		},
		{
			name: "major version",
			doc: `{"version": "v2.0.0", "levels": [{"id": 1, "title": "t", "questions": [
				{"prompt": "p", "options": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}]}`,
			want: "unsupported catalog version",
		},
		{
			name: "gap in ids",
			doc: `{"version": "v1.0.0", "pass_threshold": 1, "levels": [{"id": 2, "title": "t", "questions": [
				{"prompt": "p", "options": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}]}`,
			want: "contiguous",
		},
		{
			name: "no correct option",
			doc: `{"version": "v1.0.0", "pass_threshold": 1, "levels": [{"id": 1, "title": "t", "questions": [
				{"prompt": "p", "options": [{"text": "a", "correct": false}, {"text": "b", "correct": false}]}]}]}`,
			want: "no correct option",
		},
		{
			name: "threshold above question count",
			doc: `{"version": "v1.0.0", "levels": [{"id": 1, "title": "t", "questions": [
				{"prompt": "p", "options": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}]}`,
			want: "exceeds",
		},
		{
			name: "max_correct above correct options",
			doc: `{"version": "v1.0.0", "pass_threshold": 1, "levels": [{"id": 1, "title": "t", "questions": [
				{"prompt": "p", "max_correct": 2, "options": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}]}`,
			want: "max_correct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if c != Default() {
		t.Error("expected empty path to return the built-in catalog")
	}

	path := filepath.Join(t.TempDir(), "levels.json")
	if err := os.WriteFile(path, []byte(minimalDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if c.MaxLevelID() != 2 {
		t.Errorf("MaxLevelID = %d, want 2", c.MaxLevelID())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStageName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Level 1: Beginner's Mind", "Beginner's Mind"},
		{"Untitled", "Untitled"},
	}
	for _, tt := range tests {
		if got := (Level{Title: tt.title}).StageName(); got != tt.want {
			t.Errorf("StageName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
