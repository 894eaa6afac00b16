package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig, origNoColor := Output, color.NoColor
	Output = &buf
	color.NoColor = true
	t.Cleanup(func() {
		Output = orig
		color.NoColor = origNoColor
	})
	return &buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		logger Logger
		want   string
	}{
		{"quiet", Logger{}, "[warn] always\n"},
		{"verbose", Logger{Verbose: true}, "[info] info\n[warn] warn\n[warn] always\n"},
		{"debug", Logger{Debug: true}, "[info] info\n[debug] debug\n[warn] warn\n[warn] always\n[error] error\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.logger.Infof("info")
			tt.logger.Debugf("debug")
			tt.logger.Warnf("warn")
			tt.logger.WarnfAlways("always")
			tt.logger.Errorf("error")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_ErrorfAndReturnWraps(t *testing.T) {
	capture(t)
	cause := errors.New("boom")
	err := Logger{}.ErrorfAndReturn("splitting: %w", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "splitting: boom", err.Error())
}
