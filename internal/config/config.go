// Package config defines the server configuration structure.
package config

// Config represents the complete server configuration loaded from YAML.
type Config struct {
	Server struct {
		Port     string `yaml:"port,omitempty"`
		Host     string `yaml:"host,omitempty"`
		Env      string `yaml:"env,omitempty"`       // prod or dev; if nothing is set then prod
		LogLevel string `yaml:"log_level,omitempty"` // logrus level name; empty means info
		HTTP     struct {
			RateLimit struct {
				RPS   float64 `yaml:"rps,omitempty"`   // requests per second; 0 disables limiting
				Burst int     `yaml:"burst,omitempty"` // token bucket size
			} `yaml:"rate_limit"`
		} `yaml:"http"`
	} `yaml:"server"`
}
