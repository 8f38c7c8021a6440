package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StepResult is the persisted record of a single step execution.
// Matches .mavenhook/run/steps/<step>.json.
type StepResult struct {
	Step   string `json:"step"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// LastRun is the persisted summary of the last pipeline invocation.
// Matches .mavenhook/run/last-run.json.
type LastRun struct {
	Status  string   `json:"status"`
	Steps   []string `json:"steps"`
	Failed  string   `json:"failed,omitempty"`
	Aborted bool     `json:"aborted,omitempty"`
}

// StateStore handles reading and writing run state.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory
// (e.g. .mavenhook/run).
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// ReadLastRun loads the last invocation summary. A missing file is clean
// state and returns nil.
func (s *StateStore) ReadLastRun() (*LastRun, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var last LastRun
	if err := json.NewDecoder(f).Decode(&last); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &last, nil
}

// ReadStep loads one step's persisted result, or nil if absent.
func (s *StateStore) ReadStep(name string) (*StepResult, error) {
	f, err := os.Open(filepath.Join(s.baseDir, "steps", name+".json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var res StepResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteLastRun saves the invocation summary.
func (s *StateStore) WriteLastRun(last LastRun) error {
	return s.writeJSON(s.lastRunPath(), last)
}

// WriteStepResult saves a step's result.
func (s *StateStore) WriteStepResult(res StepResult) error {
	return s.writeJSON(filepath.Join(s.baseDir, "steps", res.Step+".json"), res)
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
