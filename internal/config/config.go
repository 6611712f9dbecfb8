package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var botTokenRe = regexp.MustCompile(`^[0-9]+:[a-zA-Z0-9\-_]+$`)

// Config holds the application's configuration.
type Config struct {
	Telegram struct {
		BotToken       string  `yaml:"bot_token"`
		AdminChannelID int64   `yaml:"admin_channel_id"`
		Admins         []int64 `yaml:"admins"`
		Chats          []int64 `yaml:"chats"`
	} `yaml:"telegram"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port      string `yaml:"port"`
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"server"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// Validate checks the fields the bot cannot start without.
func (c *Config) Validate() error {
	if !botTokenRe.MatchString(c.Telegram.BotToken) {
		return fmt.Errorf("bot token not correct - please check")
	}
	if c.Telegram.AdminChannelID == 0 {
		return fmt.Errorf("admin_channel_id is required")
	}
	return nil
}
