package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] in the layout of the config
// file. The same keys are used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Target       string `json:"target" yaml:"target"`
		Version      string `json:"version" yaml:"version"`
		APIServerURL string `json:"api_server_url" yaml:"api_server_url"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Auth0 struct {
		URL         string `json:"url" yaml:"url"`
		Audience    string `json:"audience" yaml:"audience"`
		ClientID    string `json:"client_id" yaml:"client_id"`
		CallbackURL string `json:"callback_url" yaml:"callback_url"`
	} `json:"auth0,omitempty" yaml:"auth0,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		RequestTimeout   Duration `json:"request_timeout" yaml:"request_timeout"`
		CheckProvider    bool     `json:"check_provider" yaml:"check_provider"`
		CheckInterval    Duration `json:"check_interval" yaml:"check_interval"`
		DiscoveryBaseURL string   `json:"discovery_base_url" yaml:"discovery_base_url"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Output struct {
		Path   string `json:"path" yaml:"path"`
		Format string `json:"format" yaml:"format"`
	} `json:"output,omitempty" yaml:"output,omitempty"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			Target:       fileCfg.App.Target,
			Version:      fileCfg.App.Version,
			APIServerURL: fileCfg.App.APIServerURL,
		},
		Auth0: Auth0{
			URL:         fileCfg.Auth0.URL,
			Audience:    fileCfg.Auth0.Audience,
			ClientID:    fileCfg.Auth0.ClientID,
			CallbackURL: fileCfg.Auth0.CallbackURL,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout:   time.Duration(fileCfg.Adapter.RequestTimeout),
			CheckProvider:    fileCfg.Adapter.CheckProvider,
			CheckInterval:    time.Duration(fileCfg.Adapter.CheckInterval),
			DiscoveryBaseURL: fileCfg.Adapter.DiscoveryBaseURL,
		},
		Output: Output{
			Path:   fileCfg.Output.Path,
			Format: fileCfg.Output.Format,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" or from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var nanos int64
	if err := node.Decode(&nanos); err == nil {
		*d = Duration(time.Duration(nanos))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
