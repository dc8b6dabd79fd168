package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Deletion DeletionConfig `yaml:"deletion"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	SizeLimitMB int    `yaml:"size_limit_mb"`
	BaseURL     string `yaml:"base_url"`
	AppClipID   string `yaml:"app_clip_id"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"log_path"`
}

type AuthConfig struct {
	Secret        string `yaml:"secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type StorageConfig struct {
	Path          string `yaml:"path"`
	SignSecret    string `yaml:"sign_secret"`
	URLTTLMinutes int    `yaml:"url_ttl_minutes"`
}

type DeletionConfig struct {
	GraceHours    int    `yaml:"grace_hours"`
	SweepSchedule string `yaml:"sweep_schedule"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	// Secrets can be given as ${ENV_VAR} references.
	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.SizeLimitMB == 0 {
		c.Server.SizeLimitMB = 32
	}
	if c.Auth.TokenTTLHours == 0 {
		c.Auth.TokenTTLHours = 24 * 7
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "storage"
	}
	if c.Storage.URLTTLMinutes == 0 {
		c.Storage.URLTTLMinutes = 15
	}
	if c.Deletion.GraceHours == 0 {
		c.Deletion.GraceHours = 24
	}
	if c.Deletion.SweepSchedule == "" {
		c.Deletion.SweepSchedule = "@every 1m"
	}
}
