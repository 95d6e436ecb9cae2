package transcript

import (
	bplus "BPlusIndex/bplustree"
	executor "BPlusIndex/query_executor"
	"BPlusIndex/session"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func split(t *testing.T, buf *bytes.Buffer) (questions, answers []string) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Zero(t, len(lines)%2)
	for i := 0; i < len(lines); i += 2 {
		questions = append(questions, lines[i])
		answers = append(answers, lines[i+1])
	}
	return questions, answers
}

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	cfg := DefaultConfig()
	cfg.Questions = 200
	require.NoError(t, Generate(cfg, &a))
	require.NoError(t, Generate(cfg, &b))
	require.Equal(t, a.String(), b.String())

	cfg.Seed++
	var c bytes.Buffer
	require.NoError(t, Generate(cfg, &c))
	require.NotEqual(t, a.String(), c.String())
}

func TestNoLowerboundAfterRemove(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Questions = 2000
	require.NoError(t, Generate(cfg, &buf))

	questions, _ := split(t, &buf)
	removed := false
	for _, q := range questions {
		if strings.HasPrefix(q, "remove ") {
			removed = true
		}
		if removed {
			require.False(t, strings.HasPrefix(q, "lowerbound "), q)
		}
	}
	require.True(t, removed)
}

// Replaying a generated transcript through the real pipeline for several
// orders must reproduce every oracle answer.
func TestTranscriptMatchesIndex(t *testing.T) {
	for _, removes := range []bool{false, true} {
		for _, order := range []int{3, 4, 7, 32} {
			cfg := Config{Seed: uint64(order), Questions: 3000, KeySpace: 300, MaxPairs: 6, Removes: removes}
			var buf bytes.Buffer
			require.NoError(t, Generate(cfg, &buf))
			questions, answers := split(t, &buf)

			tree, err := bplus.NewOrdered[int64, int64](bplus.WithOrder(order))
			require.NoError(t, err)
			log := logrus.New()
			log.SetOutput(io.Discard)
			d := session.NewDispatcher(executor.NewVM(tree), log)

			var out bytes.Buffer
			in := strings.NewReader(strings.Join(questions, "\n") + "\n")
			require.NoError(t, session.Run(context.Background(), in, &out, d))
			got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Equal(t, answers, got, "order %d removes %v", order, removes)
			require.NoError(t, tree.Verify())
		}
	}
}

func TestGenerateValidates(t *testing.T) {
	bad := []Config{
		{Questions: -1, KeySpace: 1, MaxPairs: 1},
		{Questions: 1, KeySpace: 0, MaxPairs: 1},
		{Questions: 1, KeySpace: 1, MaxPairs: 0},
	}
	for _, cfg := range bad {
		require.ErrorIs(t, Generate(cfg, io.Discard), ErrInvalidConfig)
	}
}
