package logger_test

import (
	"bytes"
	"testing"

	"movie-catalog/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.New().FromBuffer(buff).Make()

	require.Equal(t, 0, buff.Len())
	log.Info().Str("target", "db").Msg("movie saved")

	require.Contains(t, buff.String(), `"message":"movie saved"`)
	require.Contains(t, buff.String(), `"target":"db"`)
	require.Contains(t, buff.String(), `"level":"info"`)
}

func TestLogLevelFilters(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.New().FromBuffer(buff).WithLevel("warn").Make()

	log.Info().Msg("hidden")
	require.Equal(t, 0, buff.Len())

	log.Warn().Msg("shown")
	require.Contains(t, buff.String(), "shown")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.New().FromBuffer(buff).WithLevel("loud").Make()

	log.Debug().Msg("hidden")
	require.Equal(t, 0, buff.Len())

	log.Info().Msg("shown")
	require.Contains(t, buff.String(), "shown")
}

func TestPrettyOutput(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.New().FromBuffer(buff).Pretty(true).Make()

	log.Info().Msg("ready")
	require.Contains(t, buff.String(), "ready")
	require.NotContains(t, buff.String(), `"message"`)
}
