package hdlog

import "go.uber.org/zap/zapcore"

type Options struct {
	Level   zapcore.Level
	LogDir  string // 为空时不写文件
	LineNum bool   // 是否显示代码行数
}

func NewOptions() *Options {

	return &Options{
		Level: zapcore.WarnLevel,
	}
}
