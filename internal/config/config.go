package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/agents"
)

// Config holds the application configuration
type Config struct {
	Port     int          `json:"port"`
	Region   string       `json:"region"`
	DataPath string       `json:"data_path"`
	Agents   AgentsConfig `json:"agents"`
}

// AgentsConfig holds the Bedrock identifiers for the two managed agents.
// IDs may be left empty; invocation then fails per call until they are
// configured, the server itself still starts.
type AgentsConfig struct {
	CourseCreatorID      string `json:"course_creator_id"`
	CourseCreatorAliasID string `json:"course_creator_alias_id"`
	TrainerID            string `json:"trainer_id"`
	TrainerAliasID       string `json:"trainer_alias_id"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Port:     5000,
		Region:   "us-east-1",
		DataPath: filepath.Join(homeDir, ".local", "share", "lmsapi"),
	}
}

// GetConfigPath returns the path where config should be saved
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "lmsapi", "config.json")
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPaths := []string{
		".lmsapi/config.json",
		GetConfigPath(),
	}

	for _, path := range configPaths {
		if data, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
			break
		}
	}

	applyEnvOverrides(cfg)

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataPath, 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides layers environment variables over file/default values.
// The variable names match what the deployment's .env file carries.
func applyEnvOverrides(cfg *Config) {
	if id := os.Getenv("COURSE_CREATOR_AGENT_ID"); id != "" {
		cfg.Agents.CourseCreatorID = id
	}
	if id := os.Getenv("COURSE_CREATOR_AGENT_ALIAS_ID"); id != "" {
		cfg.Agents.CourseCreatorAliasID = id
	}
	if id := os.Getenv("TRAINER_AGENT_ID"); id != "" {
		cfg.Agents.TrainerID = id
	}
	if id := os.Getenv("TRAINER_AGENT_ALIAS_ID"); id != "" {
		cfg.Agents.TrainerAliasID = id
	}
	if region := os.Getenv("AWS_REGION_NAME"); region != "" {
		cfg.Region = region
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	if dataPath := os.Getenv("LMSAPI_DATA_PATH"); dataPath != "" {
		cfg.DataPath = dataPath
	}
}

// CourseCreatorAgent returns the course creator agent descriptor
func (c *Config) CourseCreatorAgent() agents.Agent {
	return agents.Agent{
		Name:    agents.CourseCreatorName,
		ID:      c.Agents.CourseCreatorID,
		AliasID: c.Agents.CourseCreatorAliasID,
	}
}

// TrainerAgent returns the trainer agent descriptor
func (c *Config) TrainerAgent() agents.Agent {
	return agents.Agent{
		Name:    agents.TrainerName,
		ID:      c.Agents.TrainerID,
		AliasID: c.Agents.TrainerAliasID,
	}
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
