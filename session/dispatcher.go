package session

import (
	executor "BPlusIndex/query_executor"
	codegen "BPlusIndex/query_parser/code-generator"
	"BPlusIndex/query_parser/parser"
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const (
	UnknownCommand = "unknown command"
	errorPrefix    = "error: "
)

// Dispatcher turns one protocol line into one answer line by running it
// through lexer, parser, codegen and the VM.
type Dispatcher struct {
	vm  *executor.VM
	log logrus.FieldLogger

	commands uint64
	failures uint64
}

func NewDispatcher(vm *executor.VM, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{vm: vm, log: log}
}

// Handle answers line. The boolean is false for blank lines, which get no
// answer at all.
func (d *Dispatcher) Handle(line string) (string, bool) {
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	d.commands++

	stmt, err := parser.Parse(line)
	if err != nil {
		d.failures++
		if errors.Is(err, parser.ErrUnknownCommand) {
			d.log.WithField("line", line).Debug("unknown command")
			return UnknownCommand, true
		}
		d.log.WithError(err).WithField("line", line).Debug("rejected command")
		return errorPrefix + err.Error(), true
	}

	instructions, err := codegen.EmitBytecode(stmt)
	if err != nil {
		d.failures++
		d.log.WithError(err).Warn("codegen failed")
		return errorPrefix + err.Error(), true
	}

	out, err := d.vm.Execute(instructions)
	if err != nil {
		d.failures++
		d.log.WithError(err).WithField("verb", stmt.Verb()).Warn("execution failed")
		return errorPrefix + err.Error(), true
	}
	return out, true
}

// LogSummary writes the session counters and tree shape at info level.
func (d *Dispatcher) LogSummary() {
	st := d.vm.Tree().Stats()
	d.log.WithFields(logrus.Fields{
		"commands": humanize.Comma(int64(d.commands)),
		"rejected": humanize.Comma(int64(d.failures)),
		"keys":     humanize.Comma(int64(st.Keys)),
		"height":   st.Height,
		"nodes":    humanize.Comma(int64(st.Nodes)),
		"splits":   humanize.Comma(int64(st.LeafSplits + st.InternalSplits)),
	}).Info("session finished")
}
