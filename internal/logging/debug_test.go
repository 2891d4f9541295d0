package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	SetVerbose(false)

	t.Setenv("TODO_DEBUG", "")
	assert.False(t, DebugEnabled(), "DebugEnabled() should return false when TODO_DEBUG is empty")

	t.Setenv("TODO_DEBUG", "1")
	assert.True(t, DebugEnabled(), "DebugEnabled() should return true when TODO_DEBUG is set")
}

func TestSetVerbose(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")

	SetVerbose(true)
	defer SetVerbose(false)

	assert.True(t, DebugEnabled(), "SetVerbose(true) should enable debug output")
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	SetVerbose(false)

	t.Setenv("TODO_DEBUG", "")
	Debugf("hidden %s\n", "line")
	assert.Empty(t, buf.String())

	t.Setenv("TODO_DEBUG", "1")
	Debugf("loaded %d entries\n", 3)
	assert.Equal(t, "[debug] loaded 3 entries\n", buf.String())
}

func TestDebugln(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	t.Setenv("TODO_DEBUG", "")
	SetVerbose(true)
	defer SetVerbose(false)

	Debugln("opened", "entries.db")
	assert.Equal(t, "[debug] opened entries.db\n", buf.String())
}
