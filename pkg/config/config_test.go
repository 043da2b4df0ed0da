package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
registry:
  sensors:
    - id: sm-1
      type: soil_moisture
      name: Field A moisture
      location: field-a
`

func TestLoadDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if c.Environment != "dev" {
		t.Fatalf("environment = %q, want dev", c.Environment)
	}
	if c.Backend.Type != "clickhouse" {
		t.Fatalf("backend = %q, want clickhouse", c.Backend.Type)
	}
	if c.Generator.Interval != 15*time.Minute {
		t.Fatalf("interval = %v, want 15m", c.Generator.Interval)
	}
	if c.Generator.StatusInterval != time.Hour {
		t.Fatalf("status interval = %v, want 1h", c.Generator.StatusInterval)
	}
	if !c.JitterEnabled() {
		t.Fatalf("jitter should default on")
	}
	if c.Generator.TimeEffects.TempMaxHour != 14 {
		t.Fatalf("temp max hour = %d, want 14", c.Generator.TimeEffects.TempMaxHour)
	}
	if c.ClickHouse.Database != "agripulse" {
		t.Fatalf("database = %q", c.ClickHouse.Database)
	}
}

func TestLoadExplicitJitterOff(t *testing.T) {
	c, err := Load(writeConfig(t, minimalConfig+`
generator:
  jitter: false
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.JitterEnabled() {
		t.Fatalf("explicit jitter: false overridden by default")
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
backend:
  type: mysql
`))
	if err == nil {
		t.Fatalf("expected validation error for backend mysql")
	}
}

func TestLoadRejectsWeightsNotSummingToOne(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
generator:
  scenarios:
    - name: normal
      weight: 0.5
    - name: drought
      weight: 0.2
`))
	if err == nil {
		t.Fatalf("expected weight-sum validation error")
	}
}

func TestLoadRejectsEmptyStaticRegistry(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: prod
`))
	if err == nil {
		t.Fatalf("expected error for static registry without sensors")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "ch.internal")
	t.Setenv("SIM_INTERVAL", "5")
	t.Setenv("SIM_JITTER", "false")
	t.Setenv("SIM_SEED", "77")

	c, err := LoadWithEnv(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ClickHouse.Host != "ch.internal" {
		t.Fatalf("host = %q", c.ClickHouse.Host)
	}
	if c.Generator.Interval != 5*time.Minute {
		t.Fatalf("interval = %v, want 5m", c.Generator.Interval)
	}
	if c.JitterEnabled() {
		t.Fatalf("SIM_JITTER=false not applied")
	}
	if c.Generator.Seed != 77 {
		t.Fatalf("seed = %d, want 77", c.Generator.Seed)
	}
}
