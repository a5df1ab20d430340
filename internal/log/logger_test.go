package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   Debug,
		"INFO":    Info,
		"":        Info,
		"warning": Warn,
		"Error":   Error,
		"fatal":   Fatal,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, expected %s", in, got, want)
		}
	}

	if _, err := Parse("loud"); err == nil {
		t.Error("Parse(loud) should return error")
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("magicprims", Warn, &buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "WARN  [magicprims] shown 3") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "ERROR [magicprims] shown 4") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("magicprims", Debug, &buf)
	l.JSON = true

	l.Named("batch").Info("detected %s", "image/png")

	var entry logEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "INFO" || entry.Service != "magicprims/batch" || entry.Message != "detected image/png" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	if l.Named("child") != nil {
		t.Fatal("Named on nil logger should return nil")
	}
}
