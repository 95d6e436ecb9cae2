package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// maxLineSize bounds a single command line; long inserts carry many pairs.
const maxLineSize = 64 << 20

// Run answers every line of r on w until EOF. Each answer is flushed before
// the next line is read, so a peer can drive the loop one question at a
// time. Cancellation is observed between lines.
func Run(ctx context.Context, r io.Reader, w io.Writer, d *Dispatcher) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		answer, ok := d.Handle(scanner.Text())
		if !ok {
			continue
		}
		if _, err := out.WriteString(answer); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush answer: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command: %w", err)
	}
	return nil
}
