// Package config provides interactive setup functionality.
package config

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Setup runs an interactive setup to create a server configuration.
// It prompts the user for all configuration values and saves the result to the given path.
func Setup(path string) (*Config, error) {
	fmt.Println("=== Server Configuration Setup ===")
	fmt.Println()

	cfg := &Config{}

	// Server base configuration
	fmt.Println("--- Server Configuration ---")
	for {
		cfg.Server.Port = promptString("Port", "8080")
		if err := validatePort(cfg.Server.Port); err == nil {
			break
		}
		fmt.Println("Invalid port, try again")
	}
	for {
		cfg.Server.Host = promptString("Host", "127.0.0.1")
		if err := validateHost(cfg.Server.Host); err == nil {
			break
		}
		fmt.Println("Invalid host, try again")
	}
	cfg.Server.Env = promptChoice("Environment (dev/prod)", []string{"dev", "prod"}, "dev")
	cfg.Server.LogLevel = promptChoice("Log level", []string{"debug", "info", "warn", "error"}, "info")
	fmt.Println()

	// HTTP rate limiting
	fmt.Println("--- HTTP Rate Limiting ---")
	cfg.Server.HTTP.RateLimit.RPS = float64(promptInt("Requests per second (0 disables limiting)", 100))
	if cfg.Server.HTTP.RateLimit.RPS > 0 {
		cfg.Server.HTTP.RateLimit.Burst = promptInt("Burst", 200)
	}
	fmt.Println()

	// Save configuration
	fmt.Printf("Saving configuration to %s...\n", path)
	if err := SaveConfig(cfg, path); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}
	fmt.Println("Configuration saved successfully!")
	fmt.Println()

	return cfg, nil
}

// SaveConfig saves a Config to a YAML file.
func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return nil
}

// promptString prompts for a string value with a default.
func promptString(prompt string, defaultVal string) string {
	reader := bufio.NewReader(os.Stdin)

	defaultText := ""
	if defaultVal != "" {
		defaultText = fmt.Sprintf(" [%s]", defaultVal)
	}
	fmt.Printf("%s%s: ", prompt, defaultText)

	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		return defaultVal
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

// promptInt prompts for an integer value with validation and a default.
func promptInt(prompt string, defaultVal int) int {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("%s [%d]: ", prompt, defaultVal)

	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		return defaultVal
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(input)
	if err != nil {
		fmt.Printf("Invalid integer, using default %d\n", defaultVal)
		return defaultVal
	}
	return val
}

// promptChoice prompts for a choice from a list of options with a default.
func promptChoice(prompt string, choices []string, defaultVal string) string {
	reader := bufio.NewReader(os.Stdin)

	choicesText := strings.Join(choices, "/")
	fmt.Printf("%s (%s) [%s]: ", prompt, choicesText, defaultVal)

	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		return defaultVal
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}

	// Check if input is a valid choice
	for _, choice := range choices {
		if strings.EqualFold(input, choice) {
			return choice
		}
	}

	fmt.Printf("Invalid choice, using default %s\n", defaultVal)
	return defaultVal
}

// validatePort validates a port number string.
func validatePort(portStr string) error {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// validateHost validates a host string (IP address or hostname).
func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	// Try parsing as IP first
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}
	// If not an IP, assume it's a hostname (basic validation)
	if len(host) > 253 {
		return fmt.Errorf("hostname too long")
	}
	return nil
}
