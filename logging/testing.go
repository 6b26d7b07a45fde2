package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

// testAppender routes log lines through tb.Log so `go test` attributes each line to the test that
// produced it, including under t.Parallel.
type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns an appender that writes console formatted lines to tb.
func NewTestAppender(tb testing.TB) Appender {
	return &testAppender{tb}
}

func (tapp *testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	tapp.tb.Helper()
	line, err := formatLine(entry, fields)
	tapp.tb.Log(line)
	return err
}

func (tapp *testAppender) Sync() error {
	return nil
}
