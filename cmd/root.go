package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashdist/hashdist/internal/chart"
	"github.com/hashdist/hashdist/internal/monitor"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/hashdist/hashdist/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errSilent 已经向用户输出过提示，只需要非零退出
var errSilent = errors.New("silent")

type rootCMD struct {
	ctx *HashDistContext
}

func newRootCMD(ctx *HashDistContext) *rootCMD {
	return &rootCMD{ctx: ctx}
}

func (r *rootCMD) CMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashdist <hash> <buckets> <step>",
		Short: "Plot how a string hash function distributes a word list over buckets.",
		Long: `hashdist hashes every word of a word list, reduces the hash modulo <buckets>,
prints how many words collide and draws a bar chart of bucket indices grouped
into ranges of width <step>.

Available hash functions: ` + strings.Join(hashfn.Names(), ", "),
		Version: versionString(),
		Args:    cobra.ExactArgs(3),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initConfig(cmd)
		},
		RunE: r.run,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.ctx.cfgFile, "config", "", "config file")
	flags.String("mode", string(r.ctx.opts.Mode), "mode: debug or release")
	flags.String("words", r.ctx.opts.WordsFile, "word list, one word per line")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-dir", "", "directory for the rotated log file")
	flags.String("metrics", "", "write a prometheus textfile with the result")

	cmd.Flags().StringP("output", "o", "", "save the chart to this image file (png, svg, pdf...) instead of drawing it in the terminal")
	cmd.Flags().Int("width", r.ctx.opts.Width, "width of the longest terminal bar")

	_ = r.ctx.vp.BindPFlag("mode", flags.Lookup("mode"))
	_ = r.ctx.vp.BindPFlag("words", flags.Lookup("words"))
	_ = r.ctx.vp.BindPFlag("logger.level", flags.Lookup("log-level"))
	_ = r.ctx.vp.BindPFlag("logger.dir", flags.Lookup("log-dir"))
	_ = r.ctx.vp.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = r.ctx.vp.BindPFlag("width", cmd.Flags().Lookup("width"))
	_ = r.ctx.vp.BindPFlag("metrics", flags.Lookup("metrics"))

	cmd.AddCommand(newHashesCMD(r.ctx).CMD())
	cmd.AddCommand(newCompareCMD(r.ctx).CMD())
	return cmd
}

func (r *rootCMD) initConfig(cmd *cobra.Command) error {
	vp := r.ctx.vp
	if r.ctx.cfgFile != "" {
		vp.SetConfigFile(r.ctx.cfgFile)
		if err := vp.ReadInConfig(); err != nil {
			return errors.Wrap(err, "read config")
		}
	}
	vp.SetEnvPrefix("hashdist")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	r.ctx.opts.ConfigureWithViper(vp)
	r.ctx.initLog()
	if used := r.ctx.opts.ConfigFileUsed(); used != "" {
		hdlog.Debug("using config file", zap.String("file", used))
	}
	return nil
}

func (r *rootCMD) run(cmd *cobra.Command, args []string) error {
	opts := r.ctx.opts
	out := r.ctx.writer(cmd)

	words, err := r.ctx.loadWords()
	if err != nil {
		return err
	}

	name := args[0]
	fn, err := hashfn.Lookup(name)
	if err != nil {
		hdlog.Debug("hash lookup failed", zap.Error(err))
		fmt.Fprintln(out, "Hash function not found!")
		fmt.Fprintf(out, "Available: %s\n", strings.Join(hashfn.Names(), ", "))
		return errSilent
	}

	result, err := r.ctx.analyze(words, name, fn, args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total collisions of %s: %d\n", color.New(color.Bold).Sprint(name), result.Collisions)

	chartOpts := chart.NewOptions()
	chartOpts.Output = opts.Output
	chartOpts.Width = opts.Width
	chartOpts.Writer = out
	chartOpts.ImageWidth = opts.Image.Width
	chartOpts.ImageHeight = opts.Image.Height
	if err := chart.New(chartOpts).Render(result); err != nil {
		return err
	}
	return monitor.Export(opts.Metrics, result)
}

func versionString() string {
	v := version.Version
	if v == "" {
		v = "dev"
	}
	if version.Commit != "" {
		v += " (" + version.Commit + ")"
	}
	return v
}

func Execute() {
	err := newRootCMD(NewHashDistContext()).CMD().Execute()
	_ = hdlog.Sync()
	if err != nil {
		if err != errSilent {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
