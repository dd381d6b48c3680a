package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hashdist/hashdist/internal/analyzer"
)

type terminal struct {
	w     io.Writer
	width int

	title *color.Color
	bar   *color.Color
}

func newTerminal(opts *Options) *terminal {
	width := opts.Width
	if width <= 0 {
		width = NewOptions().Width
	}
	return &terminal{
		w:     opts.Writer,
		width: width,
		title: color.New(color.Bold),
		bar:   color.New(color.FgCyan),
	}
}

func (t *terminal) Render(r *analyzer.Result) error {
	labelWidth := len(xLabel)
	countWidth := len(yLabel)
	max := 0
	for _, rg := range r.Histogram {
		if len(rg.Label) > labelWidth {
			labelWidth = len(rg.Label)
		}
		if n := len(strconv.Itoa(rg.Count)); n > countWidth {
			countWidth = n
		}
		if rg.Count > max {
			max = rg.Count
		}
	}

	if _, err := t.title.Fprintln(t.w, r.Title()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(t.w, "%-*s  %-*s  %s\n", labelWidth, xLabel, t.width, "", yLabel); err != nil {
		return err
	}
	for _, rg := range r.Histogram {
		n := 0
		if max > 0 {
			n = rg.Count * t.width / max
		}
		if n == 0 && rg.Count > 0 {
			n = 1
		}
		if _, err := fmt.Fprintf(t.w, "%-*s  ", labelWidth, rg.Label); err != nil {
			return err
		}
		if _, err := t.bar.Fprint(t.w, strings.Repeat("█", n)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(t.w, "%s  %*d\n", strings.Repeat(" ", t.width-n), countWidth, rg.Count); err != nil {
			return err
		}
	}
	return nil
}
