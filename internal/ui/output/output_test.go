package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mvnconf/internal/ui/output"
	"go.trai.ch/mvnconf/internal/ui/style"
)

func TestPaint_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := output.New(&bytes.Buffer{})
	assert.Equal(t, style.Check+" ok", output.Paint(out, style.Check+" ok", style.Green))
}

func TestNew_NilWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.NotNil(t, output.New(nil))
}
