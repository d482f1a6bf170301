package keyauth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the consumer identity registered with providers.
// All fields except About are required to serve the full route group.
type Config struct {
	// Name is the unique client identifier sent to providers in every call.
	Name string `env:"KEYAUTH_NAME,required" yaml:"name"`

	// About is a free-text description served on the about endpoint.
	About string `env:"KEYAUTH_ABOUT" yaml:"about"`

	// Redirect is where the user agent lands after a successful login.
	Redirect string `env:"KEYAUTH_REDIRECT,required" yaml:"redirect"`

	// KeyFile points to the consumer's public key material, served verbatim.
	KeyFile string `env:"KEYAUTH_KEY_FILE" yaml:"key"`

	// AvatarFile points to the consumer's avatar image, served verbatim.
	AvatarFile string `env:"KEYAUTH_AVATAR_FILE" yaml:"avatar"`
}

// ConfigFromFile loads a Config from a YAML file.
func ConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
