package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New()
	assert.Equal(t, os.Stdout, p.output)
	assert.Equal(t, os.Stderr, p.errorOutput)
	assert.False(t, p.IsQuiet())
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name     string
		noColor  string
		envColor string
		expected ColorMode
	}{
		{"NO_COLOR set", "1", "always", ColorNever},
		{"always", "", "always", ColorAlways},
		{"force", "", "force", ColorAlways},
		{"never", "", "never", ColorNever},
		{"off", "", "off", ColorNever},
		{"auto", "", "auto", ColorAuto},
		{"unset", "", "", ColorAuto},
		{"unknown value", "", "rainbow", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("SKILLINDEX_COLOR", tt.envColor)

			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestError(t *testing.T) {
	var errOut bytes.Buffer
	p := NewWithOptions(nil, &errOut, ColorNever)

	p.Error(errors.New("root missing"), "Failed to index skills")
	assert.Equal(t, "[ERROR] Failed to index skills: root missing\n", errOut.String())

	errOut.Reset()
	p.Error(errors.New("root missing"), "")
	assert.Equal(t, "[ERROR] root missing\n", errOut.String())

	errOut.Reset()
	p.Error(nil, "ignored")
	assert.Empty(t, errOut.String())
}

func TestErrorShownWhenQuiet(t *testing.T) {
	var errOut bytes.Buffer
	p := NewWithOptions(nil, &errOut, ColorNever)
	p.SetQuiet(true)

	p.Error(errors.New("boom"), "")
	assert.Contains(t, errOut.String(), "boom")
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		show     func(p *TerminalPresenter)
		expected string
	}{
		{"info", func(p *TerminalPresenter) { p.Info("Indexed 2 skills across 1 categories") }, "Indexed 2 skills across 1 categories\n"},
		{"success", func(p *TerminalPresenter) { p.Success("done") }, "✓ done\n"},
		{"warning", func(p *TerminalPresenter) { p.Warning("careful") }, "⚠ careful\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithOptions(&out, nil, ColorNever)

			tt.show(p)
			assert.Equal(t, tt.expected, out.String())

			out.Reset()
			p.SetQuiet(true)
			tt.show(p)
			assert.Empty(t, out.String())
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Same(t, defaultPresenter, Default())

	Default().SetQuiet(true)
	assert.True(t, Default().IsQuiet())
	Default().SetQuiet(false)
	assert.False(t, Default().IsQuiet())
}

func TestPackageErrorUsesDefault(t *testing.T) {
	var errOut bytes.Buffer
	saved := defaultPresenter
	defer func() { defaultPresenter = saved }()

	defaultPresenter = NewWithOptions(nil, &errOut, ColorNever)
	assert.Same(t, defaultPresenter, Default())

	Error(errors.New("out of date"), "")
	assert.Equal(t, "[ERROR] out of date\n", errOut.String())
}
