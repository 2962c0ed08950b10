// Package vcs runs the version-control binary and captures the text shown in
// the dashboard panels.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	log "github.com/chmouel/lazyhg/internal/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/encoding/unicode"
)

const tracerName = "github.com/chmouel/lazyhg/internal/vcs"

// Runner runs a command and returns its captured standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as child processes.
//
// Only standard output is captured. A non-zero exit status is not an error:
// whatever the process printed is returned. An error is returned only when
// the process cannot be started.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	command := strings.TrimSpace(strings.Join(append([]string{name}, args...), " "))
	ctx, span := otel.Tracer(tracerName).Start(ctx, "vcs.run", trace.WithAttributes(
		attribute.String("vcs.command", command),
	))
	defer span.End()

	log.Printf("run: %s (cwd=%s)", command, r.Dir)

	// #nosec G204 -- the binary comes from local config and arguments are fixed
	cmd := exec.CommandContext(ctx, name, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "spawn failed")
			log.Printf("error: %s: %v", command, err)
			return "", fmt.Errorf("run %s: %w", command, err)
		}
		span.SetAttributes(attribute.Int("vcs.exit_code", exitErr.ExitCode()))
		log.Printf("exit %d ignored: %s", exitErr.ExitCode(), command)
	}

	span.SetAttributes(attribute.Int("vcs.stdout_bytes", len(output)))
	log.Printf("ok: %s (%d bytes)", command, len(output))
	return decode(output), nil
}

// decode converts process output to text. Each maximal invalid UTF-8
// subsequence becomes one U+FFFD.
func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}
