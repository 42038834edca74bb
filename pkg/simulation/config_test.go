package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["gridWidth", "gridHeight", "agentCount", "dirtyCount", "maxSteps"],
  "properties": {
    "gridWidth": {"type": "integer", "minimum": 1},
    "gridHeight": {"type": "integer", "minimum": 1},
    "agentCount": {"type": "integer", "minimum": 1},
    "dirtyCount": {"type": "integer", "minimum": 0},
    "maxSteps": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults are valid", func(c *Config) {}, false},
		{"Zero max steps is valid", func(c *Config) { c.MaxSteps = 0 }, false},
		{"Zero dirty count is valid", func(c *Config) { c.DirtyCount = 0 }, false},
		{"Zero width", func(c *Config) { c.GridWidth = 0 }, true},
		{"Negative width", func(c *Config) { c.GridWidth = -6 }, true},
		{"Zero height", func(c *Config) { c.GridHeight = 0 }, true},
		{"Zero agents", func(c *Config) { c.AgentCount = 0 }, true},
		{"Negative agents", func(c *Config) { c.AgentCount = -3 }, true},
		{"Negative dirty count", func(c *Config) { c.DirtyCount = -1 }, true},
		{"Negative max steps", func(c *Config) { c.MaxSteps = -100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)

	t.Run("ValidFile", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "ok.json",
			`{"gridWidth": 6, "gridHeight": 6, "agentCount": 3, "dirtyCount": 12, "maxSteps": 100}`)

		cfg, err := LoadConfig(cfgPath, schemaPath)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		want := DefaultConfig()
		if *cfg != *want {
			t.Errorf("LoadConfig = %+v; want %+v", cfg, want)
		}
	})

	t.Run("SchemaRejectsWrongType", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "badtype.json",
			`{"gridWidth": "six", "gridHeight": 6, "agentCount": 3, "dirtyCount": 12, "maxSteps": 100}`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("expected schema validation error, got nil")
		}
	})

	t.Run("SchemaRejectsMissingField", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "missing.json",
			`{"gridWidth": 6, "gridHeight": 6, "agentCount": 3, "dirtyCount": 12}`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("expected schema validation error, got nil")
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "broken.json", `{"gridWidth": 6,`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("expected decode error, got nil")
		}
	})

	t.Run("MissingConfigFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schemaPath); err == nil {
			t.Error("expected read error, got nil")
		}
	})

	t.Run("MissingSchemaFile", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "ok2.json",
			`{"gridWidth": 6, "gridHeight": 6, "agentCount": 3, "dirtyCount": 12, "maxSteps": 100}`)

		if _, err := LoadConfig(cfgPath, filepath.Join(dir, "noschema.json")); err == nil {
			t.Error("expected schema compile error, got nil")
		}
	})
}
