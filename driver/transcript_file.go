package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Pair is one question with the answer the index must give. Line is the
// 1-based line number of the question in the transcript file.
type Pair struct {
	Line     int
	Question string
	Expected string
}

// ReadTranscript splits r into question/answer pairs: odd lines are
// questions, even lines answers. A trailing question without an answer
// expects the empty string.
func ReadTranscript(r io.Reader) ([]Pair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64<<20)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	pairs := make([]Pair, 0, (len(lines)+1)/2)
	for i := 0; i < len(lines); i += 2 {
		p := Pair{Line: i + 1, Question: strings.TrimSpace(lines[i])}
		if i+1 < len(lines) {
			p.Expected = strings.TrimSpace(lines[i+1])
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func ReadTranscriptFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return ReadTranscript(f)
}
