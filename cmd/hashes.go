package cmd

import (
	"fmt"

	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/spf13/cobra"
)

type hashesCMD struct {
	ctx *HashDistContext
}

func newHashesCMD(ctx *HashDistContext) *hashesCMD {
	return &hashesCMD{ctx: ctx}
}

func (h *hashesCMD) CMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashes",
		Short: "list the available hash functions",
		Args:  cobra.NoArgs,
		RunE:  h.run,
	}
	return cmd
}

func (h *hashesCMD) run(cmd *cobra.Command, args []string) error {
	out := h.ctx.writer(cmd)
	for _, name := range hashfn.Names() {
		fmt.Fprintln(out, name)
	}
	return nil
}
