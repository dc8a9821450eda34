// Package integration provides CLI integration tests for larder.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// larderBin is the path to the built larder binary.
	larderBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetLarderBin sets the path to the larder binary (called from TestMain).
func SetLarderBin(path string) {
	larderBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build larder: %v", buildErr)
	}
	if larderBin == "" {
		t.Fatal("larder binary not built (larderBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	// Create config directory and write config.yaml
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a larder command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunLarder executes the larder CLI with the given arguments.
func (e *TestEnv) RunLarder(args ...string) CmdResult {
	e.t.Helper()
	return e.runWithStdin(nil, args...)
}

// RunLarderStdin executes the larder CLI feeding stdin, which drives the
// interactive menu when no subcommand is given.
func (e *TestEnv) RunLarderStdin(stdin string, args ...string) CmdResult {
	e.t.Helper()
	return e.runWithStdin(bytes.NewReader([]byte(stdin)), args...)
}

func (e *TestEnv) runWithStdin(stdin io.Reader, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(larderBin, allArgs...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run larder: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunLarder executes the larder CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRunLarder(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunLarder(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("larder %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Item mirrors the CLI's JSON output for an inventory item.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Threshold   int     `json:"threshold"`
	LastUpdated string  `json:"last_updated"`
	DailyUsage  float64 `json:"daily_usage"`
}

// Forecast mirrors the CLI's JSON output for a restock prediction.
type Forecast struct {
	Item        Item   `json:"item"`
	AlreadyLow  bool   `json:"already_low"`
	Days        int    `json:"days"`
	RestockDate string `json:"restock_date"`
}

// ExportRecord mirrors one line of a JSONL export.
type ExportRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Threshold   int     `json:"threshold"`
	LastUpdated string  `json:"last_updated"`
	DailyUsage  float64 `json:"daily_usage"`
}

// ReadJSONLFile reads a JSONL file (one JSON object per line) and returns a
// slice.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open JSONL file %s: %v", path, err)
	}
	defer f.Close()

	var results []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			t.Fatalf("failed to parse JSONL line in %s: %v", path, err)
		}
		results = append(results, record)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan JSONL file %s: %v", path, err)
	}
	return results
}
