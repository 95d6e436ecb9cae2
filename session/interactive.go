package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("insert"),
	readline.PcItem("remove"),
	readline.PcItem("lookup"),
	readline.PcItem("lowerbound"),
)

// RunInteractive is the human facing loop: a prompt with history and
// completion, colored answers, and log output routed around the prompt.
// Ctrl-C on an empty line or Ctrl-D ends it.
func RunInteractive(d *Dispatcher, log *logrus.Logger, historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "bptree> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer l.Close()

	log.SetOutput(l.Stderr())

	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}

		answer, ok := d.Handle(line)
		if !ok {
			continue
		}
		fmt.Fprintln(l.Stdout(), colorize(answer))
	}
}

func colorize(answer string) string {
	switch {
	case strings.HasPrefix(answer, errorPrefix):
		return color.RedString(answer)
	case answer == UnknownCommand:
		return color.YellowString(answer)
	case answer == "null":
		return color.New(color.Faint).Sprint(answer)
	default:
		return color.GreenString(answer)
	}
}
