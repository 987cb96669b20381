package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	body += "\n[log]\nfile = \"" + filepath.Join(dir, "missionctl.log") + "\"\n"
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := writeConfig(t, "[chat]\napi_key = \"sk-secret\"\nbackend = \"openai\"\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--config", path, "--offline"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config command: %v", err)
	}

	got := out.String()
	if strings.Contains(got, "sk-secret") {
		t.Fatal("api key printed in clear text")
	}
	if !strings.Contains(got, "offline") || strings.Contains(got, "openai") {
		t.Fatalf("--offline not applied:\n%s", got)
	}
	if !strings.Contains(got, "[launch]") || !strings.Contains(got, "limit = 5") {
		t.Fatalf("defaults missing:\n%s", got)
	}
}

func TestConfigCommandRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "[chat]\nbackend = \"carrier-pigeon\"\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "--config", path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown chat backend")
	}
}

func TestLogsCommandFiltersByLevel(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "missionctl.log")
	log := `{"level":"info","ts":"t1","msg":"launch target resolved"}
{"level":"warn","ts":"t2","msg":"launch api unavailable, starting simulation"}
`
	if err := os.WriteFile(logPath, []byte(log), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[log]\nfile = \""+logPath+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"logs", "--config", cfgPath, "--level", "warn"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("logs command: %v", err)
	}

	got := strings.TrimSpace(out.String())
	if got != "t2 WARN  launch api unavailable, starting simulation" {
		t.Fatalf("logs output = %q", got)
	}
}
