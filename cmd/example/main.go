package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/genarena/genarena/arena"
	"github.com/genarena/genarena/state"
)

var items = flag.Int("items", 1_000_000, "number of nodes for the teardown comparison")

func logLevel() slog.Level {
	if os.Getenv("DEBUG") == "1" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func must[V any](v V, err error) V {
	if err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
	return v
}

func main() {
	flag.Parse()

	logh := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	})
	slog.SetDefault(slog.New(logh))

	performance(*items)
	demo()
	refcounts()
}

type health struct {
	value int8
}

type human struct {
	name    string
	health  state.A
	enemy   state.A
	stooges []state.A
}

type monster struct {
	name   string
	health state.A
	target state.A
	friend state.A
}

// demo walks a small scene graph of cross referencing entities. Addresses
// get copied around freely, and ones whose slot was freed elsewhere simply
// stop resolving instead of dangling.
func demo() {
	var s state.T

	healths := must(state.Register[health](&s, "health", 16))
	humans := must(state.Register[human](&s, "human", 16))
	monsters := must(state.Register[monster](&s, "monster", 16))

	boss := must(monsters.Allocate(monster{
		name:   "grendel",
		health: must(healths.Allocate(health{value: 50})),
	}))
	hero := must(humans.Allocate(human{
		name:   "beowulf",
		health: must(healths.Allocate(health{value: 100})),
		enemy:  boss,
	}))
	if m, ok := monsters.Get(boss); ok {
		m.target = hero
	}

	// five stooges, the last one doubling as the boss's friend
	for i := range 5 {
		stooge := must(monsters.Allocate(monster{
			name:   fmt.Sprintf("stooge #%d", i+1),
			health: must(healths.Allocate(health{value: 10})),
			target: hero,
		}))
		if h, ok := humans.Get(hero); ok {
			h.stooges = append(h.stooges, stooge)
		}
		if i == 4 {
			if m, ok := monsters.Get(boss); ok {
				m.friend = stooge
			}
		}
	}

	// the hero pops stooges until one still resolves and kills it, which
	// happens to be the one the boss calls a friend
	if h, ok := humans.Get(hero); ok {
		slog.Info("hero sees stooges", "count", len(h.stooges))
		for len(h.stooges) > 0 {
			a := h.stooges[len(h.stooges)-1]
			h.stooges = h.stooges[:len(h.stooges)-1]

			st, ok := monsters.Get(a)
			if !ok {
				slog.Info("this stooge was already dead")
				continue
			}
			slog.Info("attacking stooge", "name", st.name)
			_ = s.Free(st.health)
			_ = s.Free(a)
			slog.Info("got one", "left", len(h.stooges))
			break
		}
	}

	// elsewhere, holding addresses that do not know what just happened
	if m, ok := monsters.Get(boss); ok {
		if friend, ok := monsters.Get(m.friend); ok {
			slog.Info("boss greets friend", "name", friend.name)
		} else {
			slog.Info("boss finds friend dead, lashes out")
			if h, ok := humans.Get(m.target); ok {
				if hp, ok := healths.Get(h.health); ok {
					hp.value -= 5
				}
			}
		}
	}

	if h, ok := humans.Get(hero); ok {
		if hp, ok := healths.Get(h.health); ok {
			slog.Info("hero health", "value", hp.value)
		}
	}

	for idx, m := range monsters.All() {
		slog.Debug("monster census", "idx", idx, "name", m.name)
	}

	slog.Info("demo done", "live", s.Len(), "cap", s.Cap(), "size", s.Size())
}

// refcounts shows shared ownership of one slot: the slot stays live until
// the last clone releases it.
func refcounts() {
	a := arena.New[string](arena.DefaultCapacity)

	r1 := arena.Own(must(a.Allocate("shared")))
	r2 := r1.Clone()

	_ = r1.Release()
	if v, ok := r2.Get(); ok {
		slog.Info("alive after one release", "value", *v)
	}

	_ = r2.Release()
	slog.Info("released", "live", a.Len())
}

type node struct {
	data [2]uint64
	next arena.H[node]
}

type heapNode struct {
	data [2]uint64
	next *heapNode
}

// performance compares tearing down a long chain of self referencing nodes
// slot by slot against leaving an equivalent heap chain to the collector.
// Building the chains is not measured, freeing them is.
func performance(n int) {
	a := arena.New[node](n)

	var head arena.H[node]
	for range n {
		head = must(a.Allocate(node{next: head}))
	}

	start := time.Now()
	for head.Alive() {
		v, _ := head.Get()
		next := v.next
		_ = head.Free()
		head = next
	}
	arenaElapsed := time.Since(start)

	var hp *heapNode
	for range n {
		hp = &heapNode{next: hp}
	}

	start = time.Now()
	hp = nil
	runtime.GC()
	heapElapsed := time.Since(start)

	slog.Info("teardown comparison",
		"items", n,
		"arena", arenaElapsed,
		"heap", heapElapsed,
	)
}
