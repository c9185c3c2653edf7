package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testConfigPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	// Test backend config
	if cfg.Backend.URL == "" {
		t.Error("Backend.URL should not be empty")
	}

	if cfg.Backend.Timeout == 0 {
		t.Error("Backend.Timeout should have a default")
	}

	// Session store driver must be resolved to a known driver
	switch cfg.SessionStore.Driver {
	case SessionStoreMemory, SessionStoreMySQL, SessionStorePostgres:
	default:
		t.Errorf("SessionStore.Driver = %q, want a known driver", cfg.SessionStore.Driver)
	}
}

func TestConfigValidation(t *testing.T) {
	valid := func() Config {
		return Config{
			Webserver: Webserver{
				Port: 8080,
				URL:  "http://localhost:8080",
			},
			Backend: Backend{
				URL: "http://localhost:9000/api",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}, wantErr: false},
		{name: "missing port", mutate: func(c *Config) { c.Webserver.Port = 0 }, wantErr: true},
		{name: "missing URL", mutate: func(c *Config) { c.Webserver.URL = "" }, wantErr: true},
		{name: "missing backend URL", mutate: func(c *Config) { c.Backend.URL = "" }, wantErr: true},
		{name: "bad session driver", mutate: func(c *Config) { c.SessionStore.Driver = "redis" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
		Backend:   Backend{URL: "http://localhost:9000/api"},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("ShutDownTime = %v, want default 5", cfg.Webserver.ShutDownTime)
	}

	if cfg.Webserver.Session.ExpiryTime != 12*time.Hour {
		t.Errorf("Session.ExpiryTime = %v, want default 12h", cfg.Webserver.Session.ExpiryTime)
	}

	if cfg.Backend.Timeout != 30*time.Second {
		t.Errorf("Backend.Timeout = %v, want default 30s", cfg.Backend.Timeout)
	}

	if cfg.SessionStore.Driver != SessionStoreMemory {
		t.Errorf("SessionStore.Driver = %q, want default %q", cfg.SessionStore.Driver, SessionStoreMemory)
	}

	if cfg.Webserver.Session.CookieName != "session" {
		t.Errorf("Session.CookieName = %q, want default \"session\"", cfg.Webserver.Session.CookieName)
	}

	if cfg.Log.LogLevel != "info" {
		t.Errorf("Log.LogLevel = %q, want default \"info\"", cfg.Log.LogLevel)
	}

	if cfg.SessionStore.Table != "sessions" {
		t.Errorf("SessionStore.Table = %q, want default \"sessions\"", cfg.SessionStore.Table)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv("IAM_ADMIN_CONFIG_JSON", jsonOverride)

	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
