// Package runner performs the side effects computed by the profile
// pipeline. Every external effect is described by a Step; the Runner
// implementations differ only in whether they perform or report steps,
// so dry-run and execute modes share one code path upstream.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/kenoh/screensetup/internal/logging"
)

// Kind identifies what a Step does.
type Kind string

const (
	KindRun   Kind = "run"   // synchronous command invocation
	KindShell Kind = "shell" // shell-interpreted command text (hooks)
	KindSpawn Kind = "spawn" // detached background process
	KindWrite Kind = "write" // file write
)

// Step is one entry of an execution plan.
type Step struct {
	Kind    Kind
	Argv    []string // KindRun, KindSpawn
	Input   string   // stdin payload for KindRun, empty otherwise
	Shell   string   // command text for KindShell
	Path    string   // target for KindWrite
	Content []byte   // body for KindWrite
}

func (s Step) String() string {
	switch s.Kind {
	case KindRun:
		if s.Input != "" {
			return fmt.Sprintf("run: %s << %q", strings.Join(s.Argv, " "), s.Input)
		}
		return "run: " + strings.Join(s.Argv, " ")
	case KindShell:
		return "shell: " + s.Shell
	case KindSpawn:
		return "spawn: " + strings.Join(s.Argv, " ")
	case KindWrite:
		var b strings.Builder
		fmt.Fprintf(&b, "write %s:", s.Path)
		for _, line := range strings.Split(strings.TrimRight(string(s.Content), "\n"), "\n") {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
		return b.String()
	default:
		return "unknown step"
	}
}

// Runner is the single capability through which the pipeline touches
// the outside world.
type Runner interface {
	// Run invokes a command and blocks until it exits.
	Run(argv ...string) error
	// RunInput invokes a command with the given text on its stdin.
	RunInput(input string, argv ...string) error
	// RunShell executes opaque command text via the shell.
	RunShell(command string) error
	// Spawn starts a detached background process that outlives the
	// invoking session.
	Spawn(argv ...string) error
	// WriteFile writes a file, creating parent directories as needed.
	WriteFile(path string, data []byte) error
}

// ExecRunner performs steps for real.
type ExecRunner struct {
	log zerolog.Logger
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{log: logging.GetLogger("runner")}
}

func (r *ExecRunner) Run(argv ...string) error {
	r.log.Debug().Strs("argv", argv).Msg("running command")
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) RunInput(input string, argv ...string) error {
	r.log.Debug().Strs("argv", argv).Int("stdin_bytes", len(input)).Msg("running command with input")
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) RunShell(command string) error {
	r.log.Debug().Str("command", command).Msg("running shell command")
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) Spawn(argv ...string) error {
	r.log.Debug().Strs("argv", argv).Msg("spawning detached process")
	cmd := exec.Command(argv[0], argv[1:]...)
	// New session so the process survives the invoking terminal.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func (r *ExecRunner) WriteFile(path string, data []byte) error {
	r.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("writing file")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DryRunner reports steps instead of performing them and records the
// resulting plan. All methods succeed.
type DryRunner struct {
	out   io.Writer
	steps []Step
}

// NewDryRunner reports each step to out; a nil out only records.
func NewDryRunner(out io.Writer) *DryRunner {
	return &DryRunner{out: out}
}

// Steps returns the recorded plan in execution order.
func (r *DryRunner) Steps() []Step {
	return r.steps
}

func (r *DryRunner) record(s Step) error {
	r.steps = append(r.steps, s)
	if r.out != nil {
		fmt.Fprintln(r.out, s)
	}
	return nil
}

func (r *DryRunner) Run(argv ...string) error {
	return r.record(Step{Kind: KindRun, Argv: argv})
}

func (r *DryRunner) RunInput(input string, argv ...string) error {
	return r.record(Step{Kind: KindRun, Argv: argv, Input: input})
}

func (r *DryRunner) RunShell(command string) error {
	return r.record(Step{Kind: KindShell, Shell: command})
}

func (r *DryRunner) Spawn(argv ...string) error {
	return r.record(Step{Kind: KindSpawn, Argv: argv})
}

func (r *DryRunner) WriteFile(path string, data []byte) error {
	return r.record(Step{Kind: KindWrite, Path: path, Content: data})
}
