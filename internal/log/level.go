package log

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
	Fatal
)

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Parse resolves a level name such as "info" or "WARN".
func Parse(level string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return Debug, nil
	case "INFO", "":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return Info, fmt.Errorf("invalid log level %q", level)
	}
}

func levelColor(l LogLevel) *color.Color {
	switch l {
	case Debug:
		return color.New(color.FgBlue)
	case Info:
		return color.New(color.FgGreen)
	case Warn:
		return color.New(color.FgYellow)
	case Error:
		return color.New(color.FgRed)
	case Fatal:
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New(color.Reset)
	}
}
