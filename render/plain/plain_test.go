package plain

import (
	"bytes"
	"testing"

	"github.com/sonnes/ydcv/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ render.Renderer = (*Renderer)(nil)

func TestTransformsAreIdentity(t *testing.T) {
	r := New()
	inputs := []string{"", "hello", "多语言", "<u>already</u>", "\x1b[31mraw\x1b[0m", "a\nb"}

	for _, s := range inputs {
		assert.Equal(t, s, r.Red(s))
		assert.Equal(t, s, r.Yellow(s))
		assert.Equal(t, s, r.Purple(s))
		assert.Equal(t, s, r.Cyan(s))
		assert.Equal(t, s, r.Underline(s))
		assert.Equal(t, s, r.Default(s))
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}

	require.NoError(t, r.Emit("hello", "hello\nn. greeting"))
	assert.Equal(t, "hello\nn. greeting\n", buf.String())
}

func TestEmitEmptyBody(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}

	require.NoError(t, r.Emit("w", ""))
	assert.Equal(t, "\n", buf.String())
}
