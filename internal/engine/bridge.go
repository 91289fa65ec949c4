package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"wellchat/internal/report"
)

// Bridge runs the Python analysis pipeline as a subprocess. The
// script reads a well report PDF, runs parameter extraction and nodal
// analysis, and prints a JSON envelope on stdout.
type Bridge struct {
	pythonPath string
	scriptPath string
	timeout    time.Duration
	log        *zap.Logger
}

// NewBridge locates the Python interpreter and the pipeline script
func NewBridge(pythonPath, scriptPath string, log *zap.Logger) (*Bridge, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if pythonPath == "" {
		var err error
		pythonPath, err = findPython()
		if err != nil {
			return nil, err
		}
	}

	if scriptPath == "" {
		var err error
		scriptPath, err = findScript()
		if err != nil {
			return nil, err
		}
	}

	return &Bridge{
		pythonPath: pythonPath,
		scriptPath: scriptPath,
		timeout:    5 * time.Minute,
		log:        log,
	}, nil
}

func findPython() (string, error) {
	for _, name := range []string{"python3", "python"} {
		path, err := exec.LookPath(name)
		if err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("python not found in PATH")
}

func findScript() (string, error) {
	execPath, _ := os.Executable()
	execDir := filepath.Dir(execPath)

	locations := []string{
		// Development: relative to binary
		filepath.Join(execDir, "python", "well_pipeline.py"),
		// Development: relative to working directory
		"python/well_pipeline.py",
		// Installed: in config dir
		filepath.Join(os.Getenv("HOME"), ".config", "wellchat", "python", "well_pipeline.py"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			abs, _ := filepath.Abs(loc)
			return abs, nil
		}
	}

	return "", fmt.Errorf("well_pipeline.py not found")
}

// envelope is the script's stdout contract
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Report  json.RawMessage `json:"report,omitempty"`
}

// Analyze runs the pipeline on a document and decodes the resulting
// report. wordLimit bounds the generated summary (advisory).
func (b *Bridge) Analyze(ctx context.Context, documentPath string, wordLimit int) (*report.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	absPath, err := filepath.Abs(documentPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", documentPath)
	}

	b.log.Info("running analysis pipeline",
		zap.String("document", absPath),
		zap.Int("word_limit", wordLimit))

	cmd := exec.CommandContext(ctx, b.pythonPath, b.scriptPath, absPath,
		"--word-limit", strconv.Itoa(wordLimit))
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// The script reports structured errors on stdout too
			var env envelope
			if json.Unmarshal(output, &env) == nil && env.Error != "" {
				b.log.Warn("analysis failed", zap.String("error", env.Error))
				return nil, fmt.Errorf("%s", env.Error)
			}
			return nil, fmt.Errorf("analysis failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("failed to run analysis pipeline: %w", err)
	}

	rep, err := decodeEnvelope(output)
	if err != nil {
		b.log.Warn("analysis output rejected", zap.Error(err))
		return nil, err
	}

	b.log.Info("analysis complete",
		zap.String("nodal_status", string(rep.NodalAnalysis.Status)))
	return rep, nil
}

func decodeEnvelope(output []byte) (*report.Report, error) {
	var env envelope
	if err := json.Unmarshal(output, &env); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline output: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%s", env.Error)
	}
	return report.Parse(env.Report)
}
