package logger

import (
	"io"
	"log"
)

// StdLogger 日志接口定义，*log.Logger 即可满足
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

const prefix = "[WordFreq] "

var (
	// Logger 常规日志，默认丢弃
	Logger StdLogger = log.New(io.Discard, prefix, log.LstdFlags)

	// DebugLogger 调试日志，未单独设置时转发到 Logger
	DebugLogger StdLogger = forward{}
)

type forward struct{}

func (forward) Print(v ...interface{})                 { Logger.Print(v...) }
func (forward) Printf(format string, v ...interface{}) { Logger.Printf(format, v...) }
func (forward) Println(v ...interface{})               { Logger.Println(v...) }

func SetLogger(l StdLogger) {
	Logger = l
}

func SetDebugLogger(l StdLogger) {
	DebugLogger = l
}

// Enable 将常规日志输出到 w；debug 为 false 时调试日志被丢弃
func Enable(w io.Writer, debug bool) {
	SetLogger(log.New(w, prefix, log.LstdFlags))
	if debug {
		SetDebugLogger(log.New(w, "[WordFreq Debug] ", log.LstdFlags))
		return
	}
	SetDebugLogger(log.New(io.Discard, "", 0))
}
