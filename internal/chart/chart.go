package chart

import (
	"io"
	"os"
	"strings"

	"github.com/hashdist/hashdist/internal/analyzer"
)

const (
	xLabel = "Bucket Index Range"
	yLabel = "Occurrences"
)

// Renderer 把分布结果画成柱状图
type Renderer interface {
	Render(r *analyzer.Result) error
}

type Options struct {
	Output string    // 图片路径，为空时画到终端
	Width  int       // 终端柱子最大宽度
	Writer io.Writer // 终端输出
	// 图片尺寸，单位 point
	ImageWidth  float64
	ImageHeight float64
}

func NewOptions() *Options {
	return &Options{
		Width:       50,
		Writer:      os.Stdout,
		ImageWidth:  800,
		ImageHeight: 400,
	}
}

func New(opts *Options) Renderer {
	if strings.TrimSpace(opts.Output) != "" {
		return newImage(opts)
	}
	return newTerminal(opts)
}
