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

func TestLoadValid(t *testing.T) {
	path := writeConfig(t, `
environment: test
server:
  port: 8080
engine:
  window: 3
  rise_threshold: 10
  delay_min: 2h
  delay_max: 4h
  best_times:
    instagram: ["08:00", "19:00"]
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Engine.DelayMin != 2*time.Hour {
		t.Fatalf("unexpected delay_min %v", c.Engine.DelayMin)
	}
	if len(c.Engine.BestTimes["instagram"]) != 2 {
		t.Fatalf("best_times not parsed: %v", c.Engine.BestTimes)
	}
}

func TestLoadRejectsBadClock(t *testing.T) {
	path := writeConfig(t, `
environment: test
engine:
  best_times:
    instagram: ["25:00"]
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid HH:MM")
	}
}

func TestLoadRejectsInvertedDelays(t *testing.T) {
	path := writeConfig(t, `
environment: test
engine:
  delay_min: 4h
  delay_max: 2h
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for delay_min > delay_max")
	}
}

func TestLoadRequiresTopicWithBrokers(t *testing.T) {
	path := writeConfig(t, `
environment: test
kafka:
  brokers: ["localhost:9092"]
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing kafka.topic")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: test
kafka:
  brokers: ["localhost:9092"]
  topic: schedule.recommendations
`)
	t.Setenv("KAFKA_TOPIC", "schedule.events")
	t.Setenv("LOG_LEVEL", "debug")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kafka.Topic != "schedule.events" {
		t.Fatalf("env override not applied: %s", c.Kafka.Topic)
	}
	if c.Log.Level != "debug" {
		t.Fatalf("env override not applied: %s", c.Log.Level)
	}
}
