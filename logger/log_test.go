package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSilentWithoutFlag(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(false, "send", &buf)
	l.Info("hello")
	l.Debugf("frame %d bytes", 60)
	l.Errorf("failed: %v", "boom")
	assert.Empty(t, buf.String())
}

func TestDebugRecordCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(true, "send", &buf).WithField("iface", "eth0")
	l.Debugf("wrote %d bytes", 60)
	out := buf.String()
	assert.Contains(t, out, "component=send")
	assert.Contains(t, out, "iface=eth0")
	assert.Contains(t, out, "wrote 60 bytes")
	assert.Contains(t, out, "level=debug")
}
