package printer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  []string
	}{
		{
			name:  "successf",
			print: func(p *Printer) { p.Successf("done in %dms", 3) },
			want:  []string{Check, "done in 3ms"},
		},
		{
			name:  "errorf",
			print: func(p *Printer) { p.Errorf("bad input %q", "x") },
			want:  []string{Cross, `bad input "x"`},
		},
		{
			name:  "warnf",
			print: func(p *Printer) { p.Warnf("config file %s not found", "a.yaml") },
			want:  []string{Dot, "config file a.yaml not found"},
		},
		{
			name:  "section",
			print: func(p *Printer) { p.Section("Config") },
			want:  []string{"Config"},
		},
		{
			name:  "check item with detail",
			print: func(p *Printer) { p.CheckItem("defaults.length", "16") },
			want:  []string{Check, "defaults.length: 16"},
		},
		{
			name:  "check item without detail",
			print: func(p *Printer) { p.CheckItem("defaults.count", "") },
			want:  []string{Check, "defaults.count"},
		},
		{
			name:  "fail item",
			print: func(p *Printer) { p.FailItem("nanoid.length", "must be between 2 and 255") },
			want:  []string{Cross, "nanoid.length: must be between 2 and 255"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrinter_FatalError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(fmt.Errorf("load config: boom"))

	assert.Contains(t, buf.String(), "Error")
	assert.Contains(t, buf.String(), "load config: boom")
}

func TestPrinter_FatalError_FieldErrors(t *testing.T) {
	err := criterio.NewFieldErrors("defaults.length", fmt.Errorf("length must be at least 1"))

	var buf bytes.Buffer
	New(&buf).FatalError(fmt.Errorf("invalid config: %w", err))

	out := buf.String()
	assert.Contains(t, out, "Validation Error")
	assert.Contains(t, out, "defaults.length")
	assert.Contains(t, out, "length must be at least 1")
}
