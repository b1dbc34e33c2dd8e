package debug

import (
	"strings"
	"testing"
)

func TestLevelBelowThresholdIsSuppressed(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, "", FlagLevel)
	l.SetLevel(LevelWarn)

	l.Info("should not appear")
	if sb.Len() != 0 {
		t.Errorf("Info() below threshold wrote %q, want nothing", sb.String())
	}

	l.Warn("should appear")
	if !strings.Contains(sb.String(), "should appear") {
		t.Errorf("Warn() at threshold missing from output: %q", sb.String())
	}
}

func TestDisabledLoggerWritesNothing(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, "", FlagLevel)
	l.SetEnabled(false)

	l.Error("silenced")
	if sb.Len() != 0 {
		t.Errorf("disabled logger wrote %q, want nothing", sb.String())
	}
}

func TestPrefixAppearsWhenFlagSet(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, "synthd", FlagPrefix)

	l.Info("hello")
	if !strings.Contains(sb.String(), "[synthd]") {
		t.Errorf("output %q missing prefix", sb.String())
	}
}

func TestPrefixAbsentWithoutFlag(t *testing.T) {
	var sb strings.Builder
	l := New(&sb, "synthd", FlagLevel)

	l.Info("hello")
	if strings.Contains(sb.String(), "[synthd]") {
		t.Errorf("output %q should not contain prefix", sb.String())
	}
}

func TestLevelStrings(t *testing.T) {
	cases := map[LogLevel]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		LevelOff:   "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestSetOutputRedirects(t *testing.T) {
	var first, second strings.Builder
	l := New(&first, "", FlagLevel)
	l.Info("to first")

	l.SetOutput(&second)
	l.Info("to second")

	if strings.Contains(first.String(), "to second") {
		t.Error("message written after SetOutput leaked into old writer")
	}
	if !strings.Contains(second.String(), "to second") {
		t.Error("message written after SetOutput missing from new writer")
	}
}
