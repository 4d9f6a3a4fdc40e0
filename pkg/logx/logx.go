package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	current atomic.Int32
	std     = log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)
)

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged.
func SetLevel(l Level) { current.Store(int32(l)) }

func enabled(l Level) bool { return int32(l) >= current.Load() }

func output(l Level, tag, msg string) {
	if !enabled(l) {
		return
	}
	std.Println(tag + " " + msg)
}

func Debug(msg string)                  { output(LevelDebug, "[DEBUG]", msg) }
func Debugf(format string, args ...any) { output(LevelDebug, "[DEBUG]", fmt.Sprintf(format, args...)) }

func Info(msg string)                  { output(LevelInfo, "[INFO]", msg) }
func Infof(format string, args ...any) { output(LevelInfo, "[INFO]", fmt.Sprintf(format, args...)) }

func Warn(msg string)                  { output(LevelWarn, "[WARN]", msg) }
func Warnf(format string, args ...any) { output(LevelWarn, "[WARN]", fmt.Sprintf(format, args...)) }

func Error(msg string)                  { output(LevelError, "[ERROR]", msg) }
func Errorf(format string, args ...any) { output(LevelError, "[ERROR]", fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits the process.
func Fatal(msg string) {
	std.Println("[FATAL] " + msg)
	os.Exit(1)
}

func Fatalf(format string, args ...any) {
	std.Println("[FATAL] " + fmt.Sprintf(format, args...))
	os.Exit(1)
}
