package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger emits records tagged with the component name. Nothing is written
// unless the debug flag is set.
type Logger struct {
	flag      bool
	component string
	entry     *logrus.Entry
}

func New(flag bool, component string) *Logger {
	return NewWithOutput(flag, component, nil)
}

// NewWithOutput is New with a dedicated destination; a nil writer keeps logrus' default.
func NewWithOutput(flag bool, component string, w io.Writer) *Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if w != nil {
		l.SetOutput(w)
	}
	return &Logger{
		flag:      flag,
		component: component,
		entry:     l.WithField("component", component),
	}
}

func (l *Logger) DebugMode() bool {
	return l.flag
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		flag:      l.flag,
		component: l.component,
		entry:     l.entry.WithField(key, value),
	}
}

func (l *Logger) Info(args ...interface{}) {
	if l.flag {
		l.entry.Info(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.flag {
		l.entry.Debug(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	if l.flag {
		l.entry.Warn(args...)
	}
}

func (l *Logger) Error(args ...interface{}) {
	if l.flag {
		l.entry.Error(args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.flag {
		l.entry.Infof(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Warnf(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Errorf(format, args...)
	}
}
