package logger

import (
	"bytes"
	"testing"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "huffpack: ")
	l.Infof("compressed %d bytes", 12)
	l.Errorf("failed: %s", "boom")

	expect := "huffpack: [INFO] compressed 12 bytes\nhuffpack: [ERROR] failed: boom\n"
	if buf.String() != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, buf.String())
	}
}
