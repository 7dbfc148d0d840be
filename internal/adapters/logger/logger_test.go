package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.bittr.nu/spoolsync/internal/adapters/logger"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing plain text into buf.
func newTestLogger(t *testing.T) (ports.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestInfo(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("synchronized 3 spools")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestWarn(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Warn("template directory is empty")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestErrorPlain(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(errors.New("connection refused"))

	g := goldie.New(t)
	g.Assert(t, "error_plain", buf.Bytes())
}

func TestErrorChain(t *testing.T) {
	l, buf := newTestLogger(t)

	err := errors.New("connection refused")
	err = zerr.Wrap(err, "failed to fetch spools")
	err = zerr.Wrap(err, "initial load failed")
	l.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestErrorNilIsSilent(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestDebugSuppressedByDefault(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Debug("noisy detail")

	assert.Empty(t, buf.String())
}

func TestDebugEmittedWhenVerbose(t *testing.T) {
	l, buf := newTestLogger(t)

	l.SetVerbose(true)
	l.Debug("noisy detail")

	assert.Equal(t, "noisy detail\n", buf.String())
}

func TestSetVerbosePreservesOutput(t *testing.T) {
	l, buf := newTestLogger(t)

	l.SetVerbose(true)
	l.SetVerbose(false)
	l.Info("still here")
	l.Debug("gone again")

	assert.Equal(t, "still here\n", buf.String())
}
