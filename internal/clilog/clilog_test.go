package clilog

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, "info", c.Level)
	assert.Equal(t, "text", c.Format)
}

func TestRegisterFlagsBindsValues(t *testing.T) {
	c := NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--log-level=debug", "--log-format=json"}))
	assert.Equal(t, "debug", c.Level)
	assert.Equal(t, "json", c.Format)
}

func TestNewLoggerTextFormat(t *testing.T) {
	c := &Config{Level: "warn", Format: "text"}
	var buf bytes.Buffer
	logger, err := c.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("should be filtered")
	logger.Warn("should appear")
	assert.NotContains(t, buf.String(), "should be filtered")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNewLoggerJSONFormat(t *testing.T) {
	c := &Config{Level: "info", Format: "json"}
	var buf bytes.Buffer
	logger, err := c.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	c := &Config{Level: "verbose", Format: "text"}
	_, err := c.NewLogger(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	c := &Config{Level: "info", Format: "xml"}
	_, err := c.NewLogger(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
