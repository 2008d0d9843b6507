package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	color.NoColor = true

	t.Run("should hide info by default", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, false, false)

		l.Info("hidden")
		l.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "[WARN]  shown")
	})

	t.Run("verbose should show info", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, false, true)

		l.Info("semester selected", "branch", "CSE", "semester", "3")

		assert.Contains(t, buf.String(), "[INFO]  semester selected")
		assert.Contains(t, buf.String(), "branch=CSE")
		assert.Contains(t, buf.String(), "semester=3")
	})

	t.Run("debug should add source", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, true, false)

		l.Debug("recomputed")

		assert.Contains(t, buf.String(), "[DEBUG] recomputed")
		assert.Contains(t, buf.String(), "logger_test.go")
	})
}

func TestContextHelpers(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	// Arrange
	ctx := WithLogger(context.Background(), New(&buf, false, true))
	ctx = With(ctx, "branch", "ECE")

	// Act
	Info(ctx, "catalog loaded", "courses", 6)
	Error(ctx, "reload failed", errors.New("boom"))

	// Assert
	out := buf.String()
	assert.Contains(t, out, "catalog loaded courses=6 branch=ECE")
	assert.Contains(t, out, "[ERROR] reload failed error=boom branch=ECE")
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	h := NewPrettyHandler(&buf, nil).WithGroup("watch")

	err := h.Handle(context.Background(), newRecord("changed", "path", "a.json"))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "watch.path=a.json")
}

func newRecord(msg string, args ...any) slog.Record {
	r := slog.NewRecord(time.Now(), slog.LevelWarn, msg, 0)
	r.Add(args...)
	return r
}
