package shared

import (
	"encoding/json"
	"os"
	"strings"
)

const DefaultServerURL = "http://localhost:8000"

type ClientConfig struct {
	ServerURL      string `json:"server_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func LoadClientConfig(path string) (*ClientConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c ClientConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}

// ApplyDefaults fills unset fields.
func (c *ClientConfig) ApplyDefaults() {
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 20
	}
}

func SaveClientConfig(path string, c *ClientConfig) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}
