package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	session string
	console bool
	stdout  io.Writer // console echo target, os.Stdout when nil
}

type loggerProperties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
	console     bool
}

func readLoggerProperties(path string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return loggerProperties{}, fmt.Errorf("read logger config %s: %w", path, err)
	}

	return loggerProperties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
		console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init points logrus at a rotating JSON log file described by the properties
// file at path.
func (l *Logger) Init(path string) error {
	props, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(ParseLevel(props.level))
	l.console = props.console

	return nil
}

// ParseLevel maps the level names used in logger.properties; anything
// unknown falls back to Debug.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "Trace":
		return logrus.TraceLevel
	case "Info":
		return logrus.InfoLevel
	case "Warn":
		return logrus.WarnLevel
	case "Error":
		return logrus.ErrorLevel
	case "Fatal":
		return logrus.FatalLevel
	default:
		return logrus.DebugLevel
	}
}

// SetSession tags every following entry with the game session id.
func (l *Logger) SetSession(id string) {
	l.session = id
}

// SetConsole turns the stdout echo on or off. The terminal front end needs it
// off while tcell owns the screen.
func (l *Logger) SetConsole(enabled bool) {
	l.console = enabled
}

func (l *Logger) entry() *logrus.Entry {
	if l.session == "" {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("session", l.session)
}

func (l *Logger) echo(level, message string) {
	if !l.console {
		return
	}
	out := l.stdout
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, level+":", message)
}

func (l *Logger) Trace(message string) {
	l.entry().Trace(message)
	l.echo("Trace", message)
}

func (l *Logger) Info(message string) {
	l.entry().Info(message)
	l.echo("Info", message)
}

func (l *Logger) Error(message string) {
	l.entry().Error(message)
	l.echo("Error", message)
}

func (l *Logger) Debug(message string) {
	l.entry().Debug(message)
	l.echo("Debug", message)
}

func (l *Logger) Warn(message string) {
	l.entry().Warn(message)
	l.echo("Warn", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal", message)
	l.entry().Fatal(message)
}
