package automation

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/cubespin/internal/engine"
)

const sample = `
name: spin-up
description: accelerate about x, coast, then reverse
steps:
  - commands: [rotate-x, velocity-up, x]
    ticks: 10
  - commands: [add-cube]
    repeat: 3
  - commands: [reverse, x]
    ticks: 5
    save_as: final.svg
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(sample))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Name != "spin-up" || len(s.Steps) != 3 {
		t.Errorf("unexpected scenario: %+v", s)
	}
	if s.Steps[0].Repeat != 1 {
		t.Errorf("repeat should default to 1, got %d", s.Steps[0].Repeat)
	}
}

func TestParseScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "name: nothing\n", ErrEmptyScenario},
		{"negative ticks", "steps:\n  - ticks: -1\n", ErrNegativeTicks},
		{"unknown command", "steps:\n  - commands: [fly]\n", engine.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScenario([]byte(tt.doc)); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRunScenario(t *testing.T) {
	s, err := ParseScenario([]byte(sample))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	eng := engine.New()
	results, err := RunScenario(context.Background(), s, eng, io.Discard)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Snapshot.Frame != 10 || results[0].Snapshot.Multiplier != 2 {
		t.Errorf("step 1 state: %+v", results[0].Snapshot)
	}
	if results[1].Snapshot.Replicas != 3 || results[1].Snapshot.Frame != 10 {
		t.Errorf("step 2 state: replicas=%d frame=%d", results[1].Snapshot.Replicas, results[1].Snapshot.Frame)
	}
	last := results[2]
	if last.Snapshot.Forward || last.Snapshot.Frame != 15 || last.SaveAs != "final.svg" {
		t.Errorf("step 3 state: %+v", last)
	}
}

func TestRunScenario_Canceled(t *testing.T) {
	s, _ := ParseScenario([]byte("steps:\n  - ticks: 100\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := RunScenario(ctx, s, engine.New(), io.Discard); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(path); err != nil {
		t.Errorf("load failed: %v", err)
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
