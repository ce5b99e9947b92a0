package config

import (
	"testing"
	"time"
)

func TestNewAppliesDefaults(t *testing.T) {
	c := New()
	if c.VCSPollInterval != DefaultVCSPollInterval {
		t.Fatalf("VCSPollInterval = %v, want %v", c.VCSPollInterval, DefaultVCSPollInterval)
	}
	if c.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", c.Theme, DefaultTheme)
	}
	if c.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", c.LogFile)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := New(
		WithVCSPollInterval(time.Second),
		WithLogFile("/tmp/giga.log"),
		WithTheme("dracula"),
	)
	if c.VCSPollInterval != time.Second {
		t.Fatalf("VCSPollInterval = %v, want 1s", c.VCSPollInterval)
	}
	if c.LogFile != "/tmp/giga.log" {
		t.Fatalf("LogFile = %q, want /tmp/giga.log", c.LogFile)
	}
	if c.Theme != "dracula" {
		t.Fatalf("Theme = %q, want dracula", c.Theme)
	}
}
