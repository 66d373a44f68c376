package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LogBuild struct {
	writer io.Writer
	level  string
	pretty bool
}

func New() *LogBuild {
	return &LogBuild{writer: os.Stdout, level: "info"}
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) WithLevel(level string) *LogBuild {
	build.level = level
	return build
}

// Pretty switches to human readable console output.
func (build *LogBuild) Pretty(on bool) *LogBuild {
	build.pretty = on
	return build
}

// Make builds the logger. An unknown level falls back to info.
func (build *LogBuild) Make() zerolog.Logger {
	lvl, err := zerolog.ParseLevel(build.level)
	if err != nil || build.level == "" {
		lvl = zerolog.InfoLevel
	}

	w := build.writer
	if build.pretty {
		w = zerolog.ConsoleWriter{Out: build.writer, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
