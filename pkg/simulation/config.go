package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Config struct {
	// Board Dimensions
	GridWidth  int `json:"gridWidth"`
	GridHeight int `json:"gridHeight"`

	// Population
	AgentCount int `json:"agentCount"`

	// Dirty tiles requested at spawn. May be silently capped by the number
	// of free cells on the board.
	DirtyCount int `json:"dirtyCount"`

	// Step budget. Zero is legal and means the engine is done before the
	// first tick.
	MaxSteps int `json:"maxSteps"`
}

func DefaultConfig() *Config {
	return &Config{
		GridWidth:  6,
		GridHeight: 6,
		AgentCount: 3,
		DirtyCount: 12,
		MaxSteps:   100,
	}
}

// Validate is the single recoverable failure point of the simulation:
// invalid configuration is rejected eagerly at construction rather than
// allowed to produce silently-degraded runs. Board dimensions and the agent
// count must be at least 1; the dirty count and the step budget must not be
// negative (zero for either is a legal degenerate run).
func (c *Config) Validate() error {
	if c.GridWidth < 1 || c.GridHeight < 1 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.AgentCount < 1 {
		return fmt.Errorf("agent count must be positive, got %d", c.AgentCount)
	}
	if c.DirtyCount < 0 {
		return fmt.Errorf("dirty count must not be negative, got %d", c.DirtyCount)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema, then runs the semantic Validate pass on the result.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate against the schema
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Semantic checks the schema cannot express
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
