package options

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Mode string

const (
	//debug 模式
	DebugMode Mode = "debug"
	// 正式模式
	ReleaseMode Mode = "release"
)

// 默认读取当前目录下的 stuff.txt
const DefaultWordsFile = "./stuff.txt"

type Options struct {
	vp   *viper.Viper // 内部配置对象
	Mode Mode         // 模式 debug 调试 release 正式

	WordsFile string // 单词文件，每行一个单词
	Output    string // 图表输出路径，为空时画到终端
	Width     int    // 终端柱状图的最大宽度
	Metrics   string // prometheus textfile 输出路径，为空时不输出

	Image struct {
		Width  float64 // 图片宽度，单位 point
		Height float64 // 图片高度，单位 point
	}

	Logger struct {
		Dir     string // 日志存储目录，为空时只输出到 stderr
		Level   zapcore.Level
		LineNum bool // 是否显示代码行数
	}
}

func New() *Options {
	o := &Options{
		Mode:      ReleaseMode,
		WordsFile: DefaultWordsFile,
		Width:     50,
	}
	o.Image.Width = 800
	o.Image.Height = 400
	o.Logger.Level = zapcore.WarnLevel
	return o
}

func (o *Options) ConfigureWithViper(vp *viper.Viper) {
	o.vp = vp

	modeStr := o.getString("mode", string(o.Mode))
	if strings.TrimSpace(modeStr) == "" {
		o.Mode = ReleaseMode
	} else {
		o.Mode = Mode(modeStr)
	}

	o.WordsFile = o.getString("words", o.WordsFile)
	o.Output = o.getString("output", o.Output)
	o.Width = o.getInt("width", o.Width)
	o.Metrics = o.getString("metrics", o.Metrics)

	o.Image.Width = o.getFloat64("image.width", o.Image.Width)
	o.Image.Height = o.getFloat64("image.height", o.Image.Height)

	o.configureLog()
}

func (o *Options) configureLog() {
	defaultLevel := zapcore.WarnLevel
	if o.Mode == DebugMode {
		defaultLevel = zapcore.DebugLevel
	}
	levelStr := o.getString("logger.level", "")
	if levelStr == "" {
		o.Logger.Level = defaultLevel
	} else if level, err := zapcore.ParseLevel(levelStr); err == nil {
		o.Logger.Level = level
	} else {
		o.Logger.Level = defaultLevel
	}
	o.Logger.Dir = o.getString("logger.dir", o.Logger.Dir)
	o.Logger.LineNum = o.getBool("logger.lineNum", o.Logger.LineNum)
}

// ConfigFileUsed 使用的配置文件
func (o *Options) ConfigFileUsed() string {
	if o.vp == nil {
		return ""
	}
	return o.vp.ConfigFileUsed()
}

func (o *Options) getString(key string, defaultValue string) string {
	v := o.vp.GetString(key)
	if v == "" {
		return defaultValue
	}
	return v
}

func (o *Options) getInt(key string, defaultValue int) int {
	v := o.vp.GetInt(key)
	if v == 0 {
		return defaultValue
	}
	return v
}

func (o *Options) getFloat64(key string, defaultValue float64) float64 {
	v := o.vp.GetFloat64(key)
	if v == 0 {
		return defaultValue
	}
	return v
}

func (o *Options) getBool(key string, defaultValue bool) bool {
	objV := o.vp.Get(key)
	if objV == nil {
		return defaultValue
	}
	return cast.ToBool(objV)
}
