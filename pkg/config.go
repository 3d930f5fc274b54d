package giga

import (
	"github.com/jinzhu/configor"
)

type Config struct {
	// default encoding used by the CLI and by web requests that omit options
	Codec struct {
		Alphabet string `default:"bitcoin"`
		Check    string `default:"none"` // none, check or cb58
		Version  string // version byte for check/cb58 ("30", "0x1e"), none if empty
	}

	WebAPI struct {
		Bind            string `default:"localhost"`
		Port            string `default:"8058"`
		QRSize          int    `default:"256"`
		ShutdownTimeout int    `default:"5"` // seconds
	}

	Log struct {
		Level      string `default:"info"`
		File       string // rotated JSON log, none if empty
		MaxSizeMB  int    `default:"100"`
		MaxAgeDays int    `default:"28"`
		MaxBackups int    `default:"3"`
	}
}

// LoadConfig reads defaults, then the optional config file, then any
// GIGA58_ environment overrides.
func LoadConfig(confPath string) (Config, error) {
	c := Config{}
	files := []string{}
	if confPath != "" {
		files = append(files, confPath)
	}
	err := configor.New(&configor.Config{ENVPrefix: "GIGA58"}).Load(&c, files...)
	return c, err
}

func TestConfig() Config {
	c := Config{}
	c.Codec.Alphabet = "bitcoin"
	c.Codec.Check = "none"
	c.WebAPI.Bind = "localhost"
	c.WebAPI.Port = "8058"
	c.WebAPI.QRSize = 128
	c.WebAPI.ShutdownTimeout = 1
	c.Log.Level = "debug"
	return c
}
