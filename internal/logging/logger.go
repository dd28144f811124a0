package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ttacon/chalk"
)

// Colors accepted by New for the logger name.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const (
	DebugLevelTag = "debug"
	InfoLevelTag  = "info"
	WarnLevelTag  = "warn"
	ErrorLevelTag = "error"

	// DefaultFlags is the bitmask used to create default loggers.
	DefaultFlags = log.Ldate | log.Ltime
)

// LeveledLogger is a logger that allows Errorf, etc.. logging.
type LeveledLogger interface {
	Errorf(string, ...any)
	Warnf(string, ...any)
	Infof(string, ...any)
	Debugf(string, ...any)
}

var _ LeveledLogger = (*Logger)(nil)

// Logger wraps the golang log.Logger struct for coloring.
type Logger struct {
	*log.Logger
}

// New returns a new logger writing to stdout, prefixed by the colored name.
func New(name string, colorFlag uint) *Logger {
	return NewWithWriter(os.Stdout, name, colorFlag)
}

// NewWithWriter returns a new logger writing to w.
func NewWithWriter(w io.Writer, name string, colorFlag uint) *Logger {
	prefix := color(colorFlag, fmt.Sprintf("[%s] ", name))
	return &Logger{log.New(w, prefix, DefaultFlags)}
}

// Errorf sends the output colored
func (logger *Logger) Errorf(format string, items ...any) {
	logger.printfc(chalk.Red, ErrorLevelTag, format, items...)
}

// Warnf sends the output colored
func (logger *Logger) Warnf(format string, items ...any) {
	logger.printfc(chalk.Yellow, WarnLevelTag, format, items...)
}

// Infof sends the output colored
func (logger *Logger) Infof(format string, items ...any) {
	logger.printfc(chalk.Cyan, InfoLevelTag, format, items...)
}

// Debugf sends the output colored
func (logger *Logger) Debugf(format string, items ...any) {
	logger.printfc(chalk.Blue, DebugLevelTag, format, items...)
}

func (logger *Logger) printfc(crayon chalk.Color, label string, format string, items ...any) {
	labelTag := fmt.Sprintf("[%s]", label)
	formatted := fmt.Sprintf("%v %s", crayon.Color(labelTag), fmt.Sprintf(format, items...))
	logger.Printf("%s", formatted)
}

func color(colorFlag uint, text string) string {
	crayon := chalk.ResetColor

	switch colorFlag {
	case Black:
		crayon = chalk.Black
	case Red:
		crayon = chalk.Red
	case Green:
		crayon = chalk.Green
	case Yellow:
		crayon = chalk.Yellow
	case Blue:
		crayon = chalk.Blue
	case Magenta:
		crayon = chalk.Magenta
	case Cyan:
		crayon = chalk.Cyan
	case White:
		crayon = chalk.White
	}

	return crayon.Color(text)
}

// Discard is a LeveledLogger that drops everything.
type Discard struct{}

func (Discard) Errorf(string, ...any) {}
func (Discard) Warnf(string, ...any)  {}
func (Discard) Infof(string, ...any)  {}
func (Discard) Debugf(string, ...any) {}
