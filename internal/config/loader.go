// Package config provides configuration loading functionality.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Load loads the server configuration from the given path.
// If the file does not exist, it runs an interactive setup using
// `Setup` to create the configuration. The function returns a
// pointer to the decoded `Config`. For unrecoverable I/O errors it
// logs the error and exits the process.
func Load(path string) *Config {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("%s not found: starting interactive setup", path)
			cfg, setupErr := Setup(path)
			if setupErr != nil {
				log.WithError(setupErr).Error("Failed to create config via setup")
				os.Exit(1)
			}
			return cfg
		} else {
			log.WithError(err).Error("Cant read Config")
			os.Exit(1)
		}
	}
	defer f.Close()

	var config Config
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		log.WithError(err).Error("Cant decode yaml")
	}
	return &config
}

// WriteDefaultConfig writes a default server_config.yml to the given path.
func WriteDefaultConfig(path string) error {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Env = "dev"
	cfg.Server.LogLevel = "info"

	cfg.Server.HTTP.RateLimit.RPS = 100
	cfg.Server.HTTP.RateLimit.Burst = 200

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(&cfg); err != nil {
		return err
	}
	return nil
}
