package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .ID }}",
			data: map[string]string{"ID": "bWk9D"},
			want: "hello bWk9D",
		},
		{
			name: "url embedding",
			tmpl: "https://example.com/{{ .ID }}",
			data: struct {
				ID    string
				Index int
			}{ID: "x7k2", Index: 0},
			want: "https://example.com/x7k2",
		},
		{
			name: "index and id",
			tmpl: "{{ .Index }}: {{ .ID }}",
			data: struct {
				ID    string
				Index int
			}{ID: "00396", Index: 3},
			want: "3: 00396",
		},
		{
			name: "upper function",
			tmpl: "{{ upper .ID }}",
			data: map[string]string{"ID": "abc123"},
			want: "ABC123",
		},
		{
			name: "lower function",
			tmpl: "{{ lower .ID }}",
			data: map[string]string{"ID": "ABC123"},
			want: "abc123",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"ID": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .ID }",
			data:    map[string]string{"ID": "test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
