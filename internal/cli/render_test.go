package cli

import "testing"

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to css", "", []string{"css"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "css,svg,png", []string{"css", "svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"all valid", []string{"css", "dot", "svg", "pdf", "png"}, false},
		{"invalid", []string{"gif"}, true},
		{"mixed", []string{"css", "json"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		fmts   []string
		format string
		want   string
	}{
		{"single keeps name", "tab.styles", []string{"css"}, "css", "tab.styles"},
		{"multiple appends extension", "out/tab", []string{"css", "svg"}, "svg", "out/tab.svg"},
		{"multiple strips own extension", "tab.css", []string{"css", "svg"}, "css", "tab.css"},
		{"default base", "", []string{"css", "svg"}, "css", "tabgrid.css"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(renderOpts{output: tt.output, formats: tt.fmts}, tt.format)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
