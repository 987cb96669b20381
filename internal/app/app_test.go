package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/missionctl/internal/chat"
	"github.com/five82/missionctl/internal/config"
	"github.com/five82/missionctl/internal/fetch"
)

func noEnv(string) string { return "" }

func TestSetupAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	body := "[display]\nstars = 50\n\n[log]\nfile = \"" + filepath.Join(dir, "m.log") + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	cfg, logger, err := Setup(Options{ConfigPath: cfgPath, Stars: 12, Seed: 7, Offline: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Sync() })

	assert.Equal(t, 12, cfg.Display.Stars)
	assert.Equal(t, int64(7), cfg.Display.Seed)
	assert.Equal(t, config.BackendOffline, cfg.Chat.Backend)
}

func TestSetupNegativeStarsDisablesField(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, Options{Stars: -1})
	assert.Equal(t, 0, cfg.Display.Stars)
}

func TestSetupRejectsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[chat\nbackend="), 0o644))

	_, _, err := Setup(Options{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewBackendSelection(t *testing.T) {
	logger := zap.NewNop()
	hc := fetch.NewClient()

	cfg := config.Default().Chat
	_, ok := newBackend(cfg, hc, logger, noEnv).(chat.HTTPBackend)
	assert.True(t, ok, "default backend should be http")

	cfg.Backend = config.BackendOffline
	_, ok = newBackend(cfg, hc, logger, noEnv).(chat.OfflineBackend)
	assert.True(t, ok, "offline backend")

	cfg.Backend = config.BackendOpenAI
	_, ok = newBackend(cfg, hc, logger, noEnv).(chat.OfflineBackend)
	assert.True(t, ok, "openai without a key degrades to offline")

	env := func(k string) string {
		if k == "OPENAI_API_KEY" {
			return "sk-test"
		}
		return ""
	}
	_, ok = newBackend(cfg, hc, logger, env).(*chat.OpenAIBackend)
	assert.True(t, ok, "openai with env key")
}

func TestProbeReportsEachEndpoint(t *testing.T) {
	launches := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"name":"Falcon 9 | Demo","net":"2030-01-01T00:00:00Z"}]}`))
	}))
	t.Cleanup(launches.Close)

	articles := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(articles.Close)

	chatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "all green: " + req.Message})
	}))
	t.Cleanup(chatSrv.Close)

	cfg := config.Default()
	cfg.Launch.APIURL = launches.URL
	cfg.News.APIURL = articles.URL
	cfg.Chat.Endpoint = chatSrv.URL

	services := NewServices(cfg, zap.NewNop(), noEnv)
	results := Probe(context.Background(), services, time.Second, nil)
	require.Len(t, results, 3)

	byName := map[string]ProbeResult{}
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.True(t, byName["launch"].OK)
	assert.Equal(t, "next: Falcon 9 | Demo", byName["launch"].Detail)

	assert.False(t, byName["news"].OK)
	assert.Equal(t, fetch.KindStatus, byName["news"].Kind)

	assert.True(t, byName["chat"].OK)
	assert.Equal(t, "reply: 17 chars", byName["chat"].Detail)
}

func TestWriteStatus(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStatus(&buf, []ProbeResult{
		{Name: "launch", OK: true, Detail: "next: X", Latency: 12 * time.Millisecond},
		{Name: "chat", Kind: fetch.KindTimeout, Detail: "context deadline exceeded"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ENDPOINT"))
	assert.Contains(t, lines[1], "UP")
	assert.Contains(t, lines[2], "DOWN (timeout)")
}
