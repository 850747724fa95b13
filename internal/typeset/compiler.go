package typeset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"resume-builder/internal/shared/telemetry"
)

// ErrCompilationFailed indicates the TeX engine did not produce a PDF.
var ErrCompilationFailed = errors.New("compilation failed")

// CompilationError carries the engine log for diagnosis.
type CompilationError struct {
	Output string
}

func (e *CompilationError) Error() string {
	return ErrCompilationFailed.Error()
}

func (e *CompilationError) Unwrap() error {
	return ErrCompilationFailed
}

// Compiler runs a TeX engine as a subprocess to turn markup into PDF bytes.
type Compiler struct {
	// Bin is the engine binary, typically "xelatex".
	Bin string
	// ScratchDir is where intermediate files are written. Each compile uses
	// a unique basename and removes its files afterwards.
	ScratchDir string
}

// NewCompiler constructs a Compiler with defaults filled in.
func NewCompiler(bin, scratchDir string) *Compiler {
	if bin == "" {
		bin = "xelatex"
	}
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	return &Compiler{Bin: bin, ScratchDir: scratchDir}
}

// Compile writes the markup to a scratch .tex file, runs the engine once in
// nonstop mode, and returns the PDF bytes. Scratch files are removed whether
// or not the run succeeds.
func (c *Compiler) Compile(ctx context.Context, markup string) ([]byte, error) {
	base := "resume_" + uuid.NewString()
	texPath := filepath.Join(c.ScratchDir, base+".tex")
	defer c.cleanup(base)

	if err := os.WriteFile(texPath, []byte(markup), 0o600); err != nil {
		return nil, fmt.Errorf("write scratch tex: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.Bin,
		"-interaction=nonstopmode",
		"-output-directory", c.ScratchDir,
		texPath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		telemetry.Error("typeset.engine_failed", map[string]any{
			"bin":   c.Bin,
			"error": err.Error(),
		})
		return nil, &CompilationError{Output: string(output)}
	}

	pdf, err := os.ReadFile(filepath.Join(c.ScratchDir, base+".pdf"))
	if err != nil {
		// Engine exited zero but left no PDF. Treat as a failed compile.
		return nil, &CompilationError{Output: string(output)}
	}
	if len(pdf) == 0 {
		return nil, &CompilationError{Output: string(output)}
	}
	return pdf, nil
}

func (c *Compiler) cleanup(base string) {
	for _, ext := range []string{".tex", ".pdf", ".log", ".aux"} {
		path := filepath.Join(c.ScratchDir, base+ext)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			telemetry.Warn("typeset.cleanup_failed", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}
