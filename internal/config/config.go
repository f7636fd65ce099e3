package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string            `yaml:"env" env-default:"local"`
	DSN           string            `yaml:"dsn" env:"DSN" env-required:"true"`
	DefaultLocale string            `yaml:"default_locale" env-default:"en"`
	Seed          bool              `yaml:"seed" env-default:"false"`
	HTTP          HTTPConfig        `yaml:"http"`
	Admin         AdminConfig       `yaml:"admin"`
	Cache         CacheConfig       `yaml:"cache"`
	FileStorage   FileStorageConfig `yaml:"file_storage"`
	Redis         RedisConf         `yaml:"redis"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type AdminConfig struct {
	Email         string        `yaml:"email" env:"ADMIN_EMAIL" env-required:"true"`
	PasswordHash  string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	SessionTTL    time.Duration `yaml:"session_ttl" env-default:"168h"`
}

type CacheConfig struct {
	SlidersTTL time.Duration `yaml:"sliders_ttl" env-default:"60s"`
	ContentTTL time.Duration `yaml:"content_ttl" env-default:"300s"`
	ConfigTTL  time.Duration `yaml:"config_ttl" env-default:"300s"`
}

type FileStorageConfig struct {
	BaseDir           string   `yaml:"base_dir"`
	BaseURL           string   `yaml:"base_url"`
	MaxSize           int64    `yaml:"max_size"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
