package common

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), Logger(context.Background()))

	buf := &bytes.Buffer{}
	logger := NewLogger(buf, false, false)
	ctx := WithLogger(context.Background(), logger)
	Logger(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, true, true)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("graph", 3).Debug("analysing")
	assert.Contains(t, buf.String(), `"graph":3`)
	assert.Contains(t, buf.String(), `"msg":"analysing"`)

	assert.Equal(t, logrus.InfoLevel, NewLogger(buf, false, false).GetLevel())
}
