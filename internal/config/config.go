package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	viper "github.com/spf13/viper"
)

/*
init 與 read 分開
init : 設置 viper watch 與 onConfigChange
read : 一般讀取, 需要讀寫鎖
*/
var configSingleton *ConfigSingleton
var muonce sync.Once

type ConfigSingleton struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	Env                 string        `mapstructure:"ENV"`
	ModulerName         string        `mapstructure:"MODULER_NAME"`
	ServerPort          string        `mapstructure:"SERVER_PORT"`
	DbName              string        `mapstructure:"POSTGRES_DB"`
	DbHost              string        `mapstructure:"POSTGRES_HOST"`
	DbPort              string        `mapstructure:"POSTGRES_PORT"`
	DbUser              string        `mapstructure:"POSTGRES_USER"`
	DbPas               string        `mapstructure:"POSTGRES_PASSWORD"`
	DbMigrationURL      string        `mapstructure:"DB_MIGRATION_URL"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	RedisPassword       string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB             int           `mapstructure:"REDIS_DB"`
	SessionTTL          time.Duration `mapstructure:"SESSION_TTL"`
	SessionCookieName   string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieSecure bool          `mapstructure:"SESSION_COOKIE_SECURE"`
	MediaRoot           string        `mapstructure:"MEDIA_ROOT"`
	MediaURL            string        `mapstructure:"MEDIA_URL"`
	KafkaBrokers        string        `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic     string        `mapstructure:"KAFKA_ORDER_TOPIC"`
	LogKafkaTopic       string        `mapstructure:"LOG_KAFKA_TOPIC"`
	SignInRateCapacity  int           `mapstructure:"SIGN_IN_RATE_CAPACITY"`
	SignInRatePerSecond int           `mapstructure:"SIGN_IN_RATE_PER_SECOND"`
	SignInRateLimiter   string        `mapstructure:"SIGN_IN_RATE_LIMITER"`
	SignInRateWindow    time.Duration `mapstructure:"SIGN_IN_RATE_WINDOW"`
	SeedFile            string        `mapstructure:"SEED_FILE"`
}

var defaults = map[string]any{
	"ENV":                     "development",
	"MODULER_NAME":            "megano",
	"SERVER_PORT":             "8080",
	"POSTGRES_DB":             "megano",
	"POSTGRES_HOST":           "localhost",
	"POSTGRES_PORT":           "5432",
	"POSTGRES_USER":           "megano",
	"POSTGRES_PASSWORD":       "password",
	"DB_MIGRATION_URL":        "",
	"REDIS_ADDR":              "localhost:6379",
	"REDIS_PASSWORD":          "",
	"REDIS_DB":                0,
	"SESSION_TTL":             "336h",
	"SESSION_COOKIE_NAME":     "sessionid",
	"SESSION_COOKIE_SECURE":   false,
	"MEDIA_ROOT":              "./media",
	"MEDIA_URL":               "/media/",
	"KAFKA_BROKERS":           "",
	"KAFKA_ORDER_TOPIC":       "megano.orders",
	"LOG_KAFKA_TOPIC":         "",
	"SIGN_IN_RATE_CAPACITY":   10,
	"SIGN_IN_RATE_PER_SECOND": 1,
	"SIGN_IN_RATE_LIMITER":    "redis",
	"SIGN_IN_RATE_WINDOW":     "1m",
	"SEED_FILE":               "docs/seed.yaml",
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

// KafkaBrokerList splits the comma separated KAFKA_BROKERS value.
func (c *Config) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Config) IsDebug() bool {
	return c.Env == "debug" || c.Env == "development"
}

func initConfig() {
	muonce.Do(func() {
		configSingleton = &ConfigSingleton{}
		cf, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("error read config")
		}
		configSingleton.Config = cf
		if viper.ConfigFileUsed() == "" {
			return
		}
		viper.OnConfigChange(func(e fsnotify.Event) {
			if cf, err := loadConfig(); err == nil {
				configSingleton.Config = cf
				log.Info().Str("file", e.Name).Msg("config reloaded")
			} else {
				log.Error().Err(err).Msg("failed to reload config file")
			}
		})
		viper.WatchConfig()
	})
}

/*
單純回傳錯誤, 由外部決定要不要 Fatal
設定檔不存在時只使用環境變數與預設值
*/
func loadConfig() (cf *Config, err error) {
	configSingleton.mu.Lock()
	defer configSingleton.mu.Unlock()

	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.AutomaticEnv()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = ".env"
	}
	if _, statErr := os.Stat(path); statErr == nil {
		viper.SetConfigFile(path)
		viper.SetConfigType("env")
		if err = viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cf = &Config{}
	if err = viper.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
