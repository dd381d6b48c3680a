package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/hashdist/hashdist/internal/analyzer"
	"github.com/hashdist/hashdist/internal/options"
	"github.com/hashdist/hashdist/internal/wordlist"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// HashDistContext 各个子命令共享的配置
type HashDistContext struct {
	cfgFile string
	opts    *options.Options
	vp      *viper.Viper
	out     io.Writer
}

func NewHashDistContext() *HashDistContext {
	return &HashDistContext{
		opts: options.New(),
		vp:   viper.New(),
	}
}

// loadWords 读取配置中的单词文件
func (c *HashDistContext) loadWords() ([]string, error) {
	return wordlist.Load(c.opts.WordsFile)
}

// analyze 解析 buckets、step 并运行分析
func (c *HashDistContext) analyze(words []string, name string, fn hashfn.Func, bucketsArg, stepArg string) (*analyzer.Result, error) {
	buckets, err := parseInt("buckets", bucketsArg)
	if err != nil {
		return nil, err
	}
	step, err := parseInt("step", stepArg)
	if err != nil {
		return nil, err
	}
	return analyzer.Analyze(words, name, fn, buckets, step)
}

func (c *HashDistContext) initLog() {
	logOpts := hdlog.NewOptions()
	logOpts.Level = c.opts.Logger.Level
	logOpts.LogDir = c.opts.Logger.Dir
	logOpts.LineNum = c.opts.Logger.LineNum
	hdlog.Configure(logOpts)
}

func (c *HashDistContext) writer(cmd *cobra.Command) io.Writer {
	if c.out != nil {
		return c.out
	}
	return cmd.OutOrStdout()
}

// parseInt 只接受十进制整数，"010" 为 10，"0x1A"、"26.0" 报错
func parseInt(name, arg string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.Wrapf(err, "%s %q", name, arg)
	}
	return v, nil
}
