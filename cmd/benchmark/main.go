package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/watchparty/watch"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const itersKey = "iters"

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark chain observation",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per configuration",
				Value: 10_000,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "latency",
				Usage:  "Leaf write to emission latency over chain depth and watcher fanout",
				Action: latency,
			},
			{
				Name:   "throughput",
				Usage:  "Emission rate under intermediate chain replacement churn",
				Action: throughput,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// node is the benchmark model: a linked chain of notifying objects.
type node struct {
	watch.Emitter
	Next  *node
	Value int
}

func (n *node) SetNext(next *node) {
	if n.Next == next {
		return
	}
	n.NotifyChanging(n, "Next")
	n.Next = next
	n.NotifyChanged(n, "Next")
}

func (n *node) SetValue(v int) {
	if n.Value == v {
		return
	}
	n.NotifyChanging(n, "Value")
	n.Value = v
	n.NotifyChanged(n, "Value")
}

// buildChain returns the root, the leaf-owning node and the leaf path for a
// chain of the given depth (depth 1 is just "Value" on the root).
func buildChain(depth int) (root, leafOwner *node, path string) {
	root = &node{}
	cur := root
	path = "Value"
	for i := 1; i < depth; i++ {
		next := &node{}
		cur.Next = next
		cur = next
		path = "Next." + path
	}
	return root, cur, path
}

var (
	depths   = []int{1, 10, 100}
	watchers = []int{1, 10, 100}
)

func latency(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	tbl := table.NewWriter()
	tbl.SetTitle("Chain Watch Latency")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, depth := range depths {
		for _, w := range watchers {
			log.Printf("Running depth %d with %d watchers", depth, w)
			root, leaf, path := buildChain(depth)

			emissions := 0
			stops := make([]func(), 0, w)
			for i := 0; i < w; i++ {
				stop, err := watch.Values(root, path, func(int) {
					emissions++
				}, watch.SkipInitial())
				if err != nil {
					return err
				}
				stops = append(stops, stop)
			}

			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			for i := 0; i < iters; i++ {
				start := time.Now()
				leaf.SetValue(i + 1)
				tach.AddTime(time.Since(start))
			}
			for _, stop := range stops {
				stop()
			}
			if emissions != iters*w {
				return fmt.Errorf("expected %d emissions, got %d", iters*w, emissions)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("depth %d * %d watchers", depth, w),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}

func throughput(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"depth", "watchers", "writes", "emissions", "time", "emissions/ms"})

	for _, depth := range depths {
		if depth < 2 {
			// churn replaces the subtree below the root, needs depth >= 2
			continue
		}
		for _, w := range watchers {
			root, _, path := buildChain(depth)

			emissions := 0
			stops := make([]func(), 0, w)
			for i := 0; i < w; i++ {
				stop, err := watch.Records(root, path, func(watch.Record) {
					emissions++
				}, watch.SkipInitial())
				if err != nil {
					return err
				}
				stops = append(stops, stop)
			}

			start := time.Now()
			for i := 0; i < iters; i++ {
				// rebuild everything below the root, forcing a full
				// detach/reattach cascade per write
				sub, leaf, _ := buildChain(depth - 1)
				leaf.Value = i + 1
				root.SetNext(sub)
			}
			duration := time.Since(start)
			for _, stop := range stops {
				stop()
			}

			rate := float64(emissions) / (float64(duration) / float64(time.Millisecond))
			tbl.Append([]string{
				fmt.Sprint(depth),
				fmt.Sprint(w),
				humanize.Comma(int64(iters)),
				humanize.Comma(int64(emissions)),
				fmt.Sprint(duration),
				humanize.Comma(int64(rate)),
			})
		}
	}

	tbl.Render()
	return nil
}
