package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/hashdist/hashdist/internal/analyzer"
	"github.com/hashdist/hashdist/internal/monitor"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/spf13/cobra"
)

type compareCMD struct {
	ctx *HashDistContext
}

func newCompareCMD(ctx *HashDistContext) *compareCMD {
	return &compareCMD{ctx: ctx}
}

func (c *compareCMD) CMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <buckets> <step>",
		Short: "run every hash function over the word list and compare collisions",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	return cmd
}

func (c *compareCMD) run(cmd *cobra.Command, args []string) error {
	words, err := c.ctx.loadWords()
	if err != nil {
		return err
	}

	results := make([]*analyzer.Result, 0, len(hashfn.Names()))
	for _, name := range hashfn.Names() {
		r, err := c.ctx.analyze(words, name, hashfn.Must(name), args[0], args[1])
		if err != nil {
			return err
		}
		results = append(results, r)
	}

	out := c.ctx.writer(cmd)
	fmt.Fprintf(out, "%d words | buckets=%d -- step=%d\n", len(words), results[0].Buckets, results[0].Step)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HASH\tCOLLISIONS\tUSED BUCKETS\tMAX LOAD")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.Name, r.Collisions, r.UsedBuckets(), r.MaxBucketLoad())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return monitor.Export(c.ctx.opts.Metrics, results...)
}
