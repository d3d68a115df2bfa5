package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "VITRINE_"

type Config struct {
	Listen    string `koanf:"listen"`
	Templates string `koanf:"templates"`

	Backend struct {
		BaseURL string        `koanf:"baseurl"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"backend"`

	Cookie struct {
		Secure bool `koanf:"secure"` // set true behind HTTPS
	} `koanf:"cookie"`

	Log struct {
		File   string `koanf:"file"`
		Pretty bool   `koanf:"pretty"`
	} `koanf:"log"`
}

func defaults() Config {
	var cfg Config
	cfg.Listen = ":8081"
	cfg.Templates = "./web/templates"
	cfg.Backend.BaseURL = "http://localhost:8000"
	cfg.Backend.Timeout = 10 * time.Second
	return cfg
}

// Load reads config.yaml (when present) and then lets VITRINE_* environment
// variables override it: VITRINE_BACKEND_BASEURL -> backend.baseurl.
func Load(path string) (Config, error) {
	cfg := defaults()
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, errors.Wrapf(err, "read config %s", path)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(key, envPrefix)
		return strings.ToLower(strings.ReplaceAll(key, "_", ".")), value
	}), nil); err != nil {
		return cfg, errors.Wrap(err, "read env config")
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal config")
	}

	log.Printf("[config] LISTEN=%s BACKEND=%s TIMEOUT=%s LOG_FILE=%s",
		cfg.Listen, cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Log.File)
	return cfg, nil
}
