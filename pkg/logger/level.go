package logger

import (
	"github.com/gookit/color"
)

// Level is a log level.
type Level int

// Log levels.
const (
	Debug Level = iota + 1
	Info
	Warn
	Error
)

var levelLabels = map[Level]struct {
	label string
	color string
}{
	Debug: {"DEB", color.Debug.Code()},
	Info:  {"INF", color.Green.Code()},
	Warn:  {"WAR", color.Warn.Code()},
	Error: {"ERR", color.Error.Code()},
}
