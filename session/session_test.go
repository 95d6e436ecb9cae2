package session

import (
	bplus "BPlusIndex/bplustree"
	executor "BPlusIndex/query_executor"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T) (*Dispatcher, *executor.Index) {
	t.Helper()
	tree, err := bplus.NewOrdered[int64, int64](bplus.WithOrder(4))
	require.NoError(t, err)
	cache, err := executor.NewLookupCache(64)
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDispatcher(executor.NewVM(tree, executor.WithCache(cache)), log), tree
}

func transcript(t *testing.T, lines ...string) []string {
	t.Helper()
	d, _ := newDispatcher(t)
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, d))
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if out.Len() == 0 {
		got = nil
	}
	return got
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"insert then lookup",
			[]string{"insert 5 50", "lookup 5"},
			[]string{"ok", "50"}},
		{"five keys split a leaf",
			[]string{"insert 1 10 2 20 3 30 4 40 5 50", "lookup 3", "lowerbound 3", "lowerbound 6"},
			[]string{"ok", "30", "30", "null"}},
		{"remove then lookup",
			[]string{"insert 10 1", "remove 10", "lookup 10"},
			[]string{"ok", "ok", "null"}},
		{"lowerbound between keys",
			[]string{"insert 1 1 3 3 5 5", "lowerbound 2", "lowerbound 6"},
			[]string{"ok", "3", "null"}},
		{"lookup on empty tree",
			[]string{"lookup 99"},
			[]string{"null"}},
		{"upsert overwrites",
			[]string{"insert 1 1 2 2", "insert 1 999", "lookup 1"},
			[]string{"ok", "ok", "999"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, transcript(t, tt.lines...))
		})
	}
}

func TestUpsertKeepsCount(t *testing.T) {
	d, tree := newDispatcher(t)
	d.Handle("insert 1 1 2 2")
	d.Handle("insert 1 999")
	require.Equal(t, 2, tree.Len())
}

func TestMalformedLines(t *testing.T) {
	d, tree := newDispatcher(t)

	tests := []struct {
		line   string
		prefix string
	}{
		{"frobnicate 1", UnknownCommand},
		{"exit", UnknownCommand},
		{"LOOKUP 1", UnknownCommand},
		{"insert 1 2 3", "error: "},
		{"insert 1 x", "error: "},
		{"remove", "error: "},
		{"lookup", "error: "},
		{"lowerbound abc", "error: "},
	}
	for _, tt := range tests {
		out, ok := d.Handle(tt.line)
		require.True(t, ok, tt.line)
		require.True(t, strings.HasPrefix(out, tt.prefix), "%q answered %q", tt.line, out)
	}
	require.Equal(t, 0, tree.Len(), "rejected commands must not touch the tree")
}

func TestRejectedInsertIsAtomic(t *testing.T) {
	d, tree := newDispatcher(t)
	out, _ := d.Handle("insert 1 1 2 2 3")
	require.True(t, strings.HasPrefix(out, "error: "))
	out, _ = d.Handle("insert 1 1 2 two")
	require.True(t, strings.HasPrefix(out, "error: "))
	require.Equal(t, 0, tree.Len())
}

func TestBlankLinesProduceNoOutput(t *testing.T) {
	got := transcript(t, "", "   ", "insert 1 1", "\t", "lookup 1")
	require.Equal(t, []string{"ok", "1"}, got)
}

func TestCRLFInput(t *testing.T) {
	d, _ := newDispatcher(t)
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader("insert 2 20\r\nlookup 2\r\n"), &out, d))
	require.Equal(t, "ok\n20\n", out.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	d, _ := newDispatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("insert 1 1\n"), &out, d)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRunWriteError(t *testing.T) {
	d, _ := newDispatcher(t)
	err := Run(context.Background(), strings.NewReader("lookup 1\n"), failWriter{}, d)
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestLogSummary(t *testing.T) {
	d, _ := newDispatcher(t)
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	d.log = log

	for i := 0; i < 1500; i++ {
		d.Handle("lookup 1")
	}
	d.Handle("bogus")
	d.LogSummary()
	require.Contains(t, buf.String(), `commands="1,501"`)
	require.Contains(t, buf.String(), "rejected=1")
}

func TestColorize(t *testing.T) {
	for _, s := range []string{"ok", "null", "42", UnknownCommand, "error: x"} {
		require.Contains(t, colorize(s), s)
	}
}
