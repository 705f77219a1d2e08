// Package logging is the module's shared leveled logging surface: logrus
// does the structured/leveled work, lumberjack rotates it to disk when
// asked, fatih/color tags console output. Every component (registry,
// reaper, calc, workers) logs through the package-level functions here
// instead of holding its own *logrus.Logger.
package logging

import (
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

var (
	mu      sync.Mutex
	base    = logrus.New()
	noColor bool
)

func init() {
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	base.SetOutput(os.Stdout)
}

// UseFile redirects output to a rotating log file.
func UseFile(path string, maxSizeMB, maxBackups, maxAgeDays int) {
	mu.Lock()
	defer mu.Unlock()
	base.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	})
}

// SetNoColor disables the fatih/color tagging, for environments (CI, piped
// output) where ANSI escapes just add noise.
func SetNoColor(v bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = v
}

func fields(kv []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f[key] = kv[i+1]
	}
	return f
}

func decorate(c *color.Color, msg string) string {
	if noColor {
		return msg
	}
	return c.Sprint(msg)
}

func Info(component, msg string, kv ...interface{}) {
	base.WithFields(fields(kv)).WithField("component", component).Info(decorate(color.New(color.FgGreen), msg))
}

func Warning(component, msg string, kv ...interface{}) {
	base.WithFields(fields(kv)).WithField("component", component).Warn(decorate(color.New(color.FgYellow), msg))
}

func Error(component, msg string, kv ...interface{}) {
	base.WithFields(fields(kv)).WithField("component", component).Error(decorate(color.New(color.FgRed), msg))
}

func Debug(component, msg string, kv ...interface{}) {
	base.WithFields(fields(kv)).WithField("component", component).Debug(msg)
}

// ComponentLogger returns a zap logger for call sites that want a structured
// logger passed around explicitly instead of calling the package funcs above.
func ComponentLogger(name string) *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Named(name)
}
