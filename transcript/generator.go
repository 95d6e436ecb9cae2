package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/tidwall/btree"
)

// Config shapes a generated transcript.
type Config struct {
	Seed      uint64
	Questions int
	// Keys are drawn from [0, KeySpace).
	KeySpace int64
	// MaxPairs bounds the pairs of one insert and the keys of one remove.
	MaxPairs int
	// Removes enables remove questions. Once one is emitted no further
	// lowerbound questions are generated.
	Removes bool
}

func DefaultConfig() Config {
	return Config{Seed: 1, Questions: 1000, KeySpace: 500, MaxPairs: 8, Removes: true}
}

var ErrInvalidConfig = errors.New("invalid transcript config")

func (c Config) Validate() error {
	switch {
	case c.Questions < 0:
		return fmt.Errorf("%w: questions must be >= 0", ErrInvalidConfig)
	case c.KeySpace <= 0:
		return fmt.Errorf("%w: key space must be > 0", ErrInvalidConfig)
	case c.MaxPairs <= 0:
		return fmt.Errorf("%w: max pairs must be > 0", ErrInvalidConfig)
	}
	return nil
}

// generator answers every question from an ordered map holding what the
// index should hold.
type generator struct {
	cfg     Config
	rng     *rand.Rand
	oracle  btree.Map[int64, int64]
	removed bool
}

// Generate writes cfg.Questions question/answer line pairs to w.
func Generate(cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g := &generator{cfg: cfg, rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))}

	out := bufio.NewWriter(w)
	for i := 0; i < cfg.Questions; i++ {
		q, a := g.next()
		if _, err := fmt.Fprintf(out, "%s\n%s\n", q, a); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

func (g *generator) key() int64 {
	return g.rng.Int64N(g.cfg.KeySpace)
}

// value spans negative numbers too so answers exercise the sign.
func (g *generator) value() int64 {
	return g.rng.Int64N(2_000_001) - 1_000_000
}

func (g *generator) next() (string, string) {
	roll := g.rng.IntN(100)
	switch {
	case roll < 40:
		return g.insert()
	case roll < 55 && g.cfg.Removes:
		return g.remove()
	case roll < 75 && !g.removed:
		return g.lowerbound()
	case roll < 98:
		return g.lookup()
	default:
		return "scan " + strconv.FormatInt(g.key(), 10), "unknown command"
	}
}

func (g *generator) insert() (string, string) {
	var b strings.Builder
	b.WriteString("insert")
	for n := 1 + g.rng.IntN(g.cfg.MaxPairs); n > 0; n-- {
		k, v := g.key(), g.value()
		g.oracle.Set(k, v)
		fmt.Fprintf(&b, " %d %d", k, v)
	}
	return b.String(), "ok"
}

func (g *generator) remove() (string, string) {
	var b strings.Builder
	b.WriteString("remove")
	for n := 1 + g.rng.IntN(g.cfg.MaxPairs); n > 0; n-- {
		k := g.key()
		g.oracle.Delete(k)
		fmt.Fprintf(&b, " %d", k)
	}
	g.removed = true
	return b.String(), "ok"
}

func (g *generator) lookup() (string, string) {
	k := g.key()
	q := "lookup " + strconv.FormatInt(k, 10)
	if v, ok := g.oracle.Get(k); ok {
		return q, strconv.FormatInt(v, 10)
	}
	return q, "null"
}

// lowerbound may look one past the key space so null answers occur.
func (g *generator) lowerbound() (string, string) {
	k := g.rng.Int64N(g.cfg.KeySpace + 1)
	q := "lowerbound " + strconv.FormatInt(k, 10)
	answer := "null"
	g.oracle.Ascend(k, func(_ int64, v int64) bool {
		answer = strconv.FormatInt(v, 10)
		return false
	})
	return q, answer
}
