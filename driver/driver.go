package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sirupsen/logrus"
)

var (
	ErrMismatch   = errors.New("answer mismatch")
	ErrCrashed    = errors.New("process under test crashed")
	ErrTerminated = errors.New("process under test terminated unexpectedly")
)

// exitGrace is how long a child whose stdout closed gets to report its exit
// status before it is treated as still running.
const exitGrace = 2 * time.Second

type Driver struct {
	Out io.Writer
	Log logrus.FieldLogger
}

// child wraps the process under test. done is closed once Wait returns.
type child struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	done   chan struct{}
	err    error
}

func start(ctx context.Context, argv []string) (*child, error) {
	if len(argv) == 0 {
		return nil, errors.New("driver: empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("driver: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("driver: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("driver: start %q: %w", argv[0], err)
	}

	c := &child{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		done:   make(chan struct{}),
	}
	go func() {
		c.err = cmd.Wait()
		close(c.done)
	}()
	return c, nil
}

// exited reports whether the child has ended, waiting up to grace for it.
func (c *child) exited(grace time.Duration) bool {
	if grace <= 0 {
		select {
		case <-c.done:
			return true
		default:
			return false
		}
	}
	select {
	case <-c.done:
		return true
	case <-time.After(grace):
		return false
	}
}

func (c *child) exitCode() int {
	if c.cmd.ProcessState == nil {
		return -1
	}
	return c.cmd.ProcessState.ExitCode()
}

func (c *child) stop() {
	c.stdin.Close()
	if !c.exited(0) {
		_ = c.cmd.Process.Kill()
	}
	<-c.done
}

// ask sends one question and returns the trimmed answer line. eof is set
// when the child closed its stdout before answering.
func (c *child) ask(question string) (answer string, eof bool, err error) {
	if _, err := io.WriteString(c.stdin, question+"\n"); err != nil {
		return "", false, err
	}
	line, err := c.stdout.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), false, nil
}

// Run replays transcriptPath against the command argv.
func (d *Driver) Run(ctx context.Context, transcriptPath string, argv []string) error {
	pairs, err := ReadTranscriptFile(transcriptPath)
	if err != nil {
		return err
	}
	return d.Replay(ctx, pairs, argv)
}

// Replay sends every question to a fresh child and compares its answers.
// The first mismatch or crash ends the run with a report on d.Out.
func (d *Driver) Replay(ctx context.Context, pairs []Pair, argv []string) error {
	c, err := start(ctx, argv)
	if err != nil {
		return err
	}
	defer c.stop()

	started := time.Now()
	for _, p := range pairs {
		actual, eof, err := c.ask(p.Question)
		if err != nil && !c.exited(exitGrace) {
			return fmt.Errorf("driver: communication with process under test: %w", err)
		}

		grace := time.Duration(0)
		if eof || err != nil {
			grace = exitGrace
		}
		if c.exited(grace) {
			fmt.Fprintf(d.Out, "SUT crashed when handling line %d with question '%s' with return code %d\n",
				p.Line, p.Question, c.exitCode())
			return fmt.Errorf("%w: line %d", ErrCrashed, p.Line)
		}

		if actual != p.Expected {
			diff, derr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(p.Expected),
				B:        difflib.SplitLines(actual),
				FromFile: "expected",
				ToFile:   "actual",
				Context:  3,
			})
			if derr != nil {
				return fmt.Errorf("driver: diff: %w", derr)
			}
			fmt.Fprintf(d.Out, "Mismatch found, for input in line %d:\n", p.Line)
			fmt.Fprintf(d.Out, "Question: %s\n", p.Question)
			fmt.Fprint(d.Out, diff)
			return fmt.Errorf("%w: line %d", ErrMismatch, p.Line)
		}
	}

	if c.exited(0) {
		fmt.Fprintf(d.Out, "SUT terminated unexpectedly with return code %d\n", c.exitCode())
		return ErrTerminated
	}

	color.New(color.FgGreen).Fprintln(d.Out, "All tests passed.")
	if d.Log != nil {
		d.Log.WithFields(logrus.Fields{
			"questions": humanize.Comma(int64(len(pairs))),
			"elapsed":   time.Since(started).Round(time.Millisecond),
		}).Info("transcript replayed")
	}
	return nil
}
