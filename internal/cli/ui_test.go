package cli

import (
	"bytes"
	"strings"
	"testing"
)

// captureStdout redirects status output to a buffer for the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestPrinters(t *testing.T) {
	buf := captureStdout(t)

	printSuccess("Moved %s", "time")
	printWarning("The %s store cannot be cleared", "mongo")
	printKeyValue("Density", "double")
	printFile("tabgrid.css")

	out := buf.String()
	for _, want := range []string{iconSuccess, "Moved time", iconWarning, "mongo store", "Density", "double", iconArrow, "tabgrid.css"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Errorf("printed %d lines, want 4", n)
	}
}
