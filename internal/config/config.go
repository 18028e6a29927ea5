package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	UploadDir         string   `yaml:"upload_dir"`
	MaxMediaSizeBytes int64    `yaml:"max_media_size_bytes"`
	AllowedExtensions []string `yaml:"allowed_extensions"` // lowercase, without the dot
	AllowedOrigins    []string `yaml:"allowed_origins"`
	LogLevel          string   `yaml:"log_level"`
	LogJSON           bool     `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

// Defaults returns a Public config with the stock upload limits. Tests and
// MustLoad both start from it so a partial public.yaml still gets sane values.
func Defaults() Public {
	return Public{
		UploadDir:         "uploads",
		MaxMediaSizeBytes: 10_000_000,
		AllowedExtensions: []string{"jpg", "jpeg", "png", "gif", "mp4", "mov"},
		AllowedOrigins:    []string{"*"},
		LogLevel:          "info",
	}
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	public := Defaults()
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
