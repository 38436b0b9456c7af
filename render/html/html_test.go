package html

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sonnes/ydcv/notify"
	"github.com/sonnes/ydcv/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ render.Renderer = (*Renderer)(nil)

// recordingSender captures every notification it is asked to send.
type recordingSender struct {
	sent   []notify.Notification
	err    error
	nextID uint32
}

func (s *recordingSender) Send(n *notify.Notification) error {
	s.sent = append(s.sent, *n)
	if s.err != nil {
		return s.err
	}
	s.nextID++
	if n.ID == 0 {
		n.ID = s.nextID
	}
	return nil
}

func TestTransforms(t *testing.T) {
	r := New(false)

	for _, s := range []string{"", "bar", "多语言"} {
		assert.Equal(t, `<span color="red">`+s+`</span>`, r.Red(s))
		assert.Equal(t, `<span color="goldenrod">`+s+`</span>`, r.Yellow(s))
		assert.Equal(t, `<span color="purple">`+s+`</span>`, r.Purple(s))
		assert.Equal(t, `<span color="navy">`+s+`</span>`, r.Cyan(s))
		assert.Equal(t, `<u>`+s+`</u>`, r.Underline(s))
		assert.Equal(t, s, r.Default(s))
	}
}

func TestEmitNotifyDisabled(t *testing.T) {
	var buf bytes.Buffer
	sender := &recordingSender{}
	r := New(false)
	r.Out = &buf
	r.Sender = sender

	require.NoError(t, r.Emit("w", "b"))

	assert.Equal(t, "b\n", buf.String())
	assert.Empty(t, sender.sent)
	assert.False(t, r.Notify())
}

func TestEmitNotifyEnabled(t *testing.T) {
	var buf bytes.Buffer
	sender := &recordingSender{}
	r := New(true)
	r.Out = &buf
	r.Sender = sender

	require.NoError(t, r.Emit("w", "b"))

	assert.Empty(t, buf.String())
	require.Len(t, sender.sent, 1)
	assert.Equal(t, notify.Notification{
		AppName: "ydcv",
		Summary: "w",
		Body:    "b",
		Timeout: 30000,
	}, sender.sent[0])
	assert.True(t, r.Notify())
}

func TestEmitReusesHandle(t *testing.T) {
	sender := &recordingSender{}
	r := New(true)
	r.Sender = sender

	require.NoError(t, r.Emit("first", "one"))
	require.NoError(t, r.Emit("second", "two"))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, uint32(0), sender.sent[0].ID, "first send opens a new pop-up")
	assert.Equal(t, uint32(1), sender.sent[1].ID, "second send replaces it")
	assert.Equal(t, "second", sender.sent[1].Summary)
	assert.Equal(t, "two", sender.sent[1].Body)
}

func TestEmitSwallowsSendFailure(t *testing.T) {
	var buf bytes.Buffer
	sender := &recordingSender{err: errors.New("no notification daemon")}
	r := New(true)
	r.Out = &buf
	r.Sender = sender

	require.NoError(t, r.Emit("w", "b"))
	assert.Len(t, sender.sent, 1)
	assert.Empty(t, buf.String())
}
