package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/cubespin/internal/engine"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScenario indicates a scenario without steps.
	ErrEmptyScenario = errors.New("automation: scenario has no steps")

	// ErrNegativeTicks indicates a step asking for a negative tick count.
	ErrNegativeTicks = errors.New("automation: ticks must not be negative")
)

// Scenario defines a scripted sequence of commands and ticks
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preset      string         `yaml:"preset"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep applies its commands in order, then ticks. Repeat runs the
// whole step that many times.
type ScenarioStep struct {
	Commands []string `yaml:"commands"`
	Ticks    int      `yaml:"ticks"`
	Repeat   int      `yaml:"repeat"`
	SaveAs   string   `yaml:"save_as"`

	parsed []engine.Command
}

// StepResult is the state after a step finished.
type StepResult struct {
	Step     int
	SaveAs   string
	Snapshot engine.Snapshot
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.compile(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) compile() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		if step.Ticks < 0 {
			return fmt.Errorf("step %d: %w", i+1, ErrNegativeTicks)
		}
		if step.Repeat < 1 {
			step.Repeat = 1
		}
		step.parsed = make([]engine.Command, 0, len(step.Commands))
		for _, name := range step.Commands {
			cmd, err := engine.ParseCommand(name)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			step.parsed = append(step.parsed, cmd)
		}
	}
	return nil
}

// RunScenario executes all steps against eng, reporting progress to log.
func RunScenario(ctx context.Context, scenario *Scenario, eng *engine.Engine, log io.Writer) ([]StepResult, error) {
	if len(scenario.Steps) == 0 || scenario.Steps[0].parsed == nil {
		if err := scenario.compile(); err != nil {
			return nil, err
		}
	}

	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(log, "running step %d/%d: %d command(s), %d tick(s) x%d\n",
			i+1, len(scenario.Steps), len(step.parsed), step.Ticks, step.Repeat)

		for r := 0; r < step.Repeat; r++ {
			eng.ApplyAll(step.parsed)
			if err := eng.Run(ctx, step.Ticks); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		results = append(results, StepResult{Step: i + 1, SaveAs: step.SaveAs, Snapshot: eng.Snapshot()})
	}

	return results, nil
}
