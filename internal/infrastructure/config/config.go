// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"farewatch-service/internal/domain/entity"
)

const (
	defaultAviasalesAPIBase = "https://api.travelpayouts.com"
	defaultTelegramAPIBase  = "https://api.telegram.org"
	defaultStateFile        = "state.json"
	defaultMongoDB          = "farewatch"
	defaultTelegramSendRPS  = 4.0
)

// Config holds all configuration for one run.
// Precedence: environment variables > config file > defaults.
type Config struct {
	// Aviasales
	AviasalesToken   string
	AviasalesAPIBase string

	// Telegram
	TelegramBotToken string
	TelegramAPIBase  string
	TelegramSendRPS  float64
	AdminChatID      string

	// State persistence
	StateFile   string
	GistID      string
	GithubToken string
	MongoURI    string
	MongoDB     string

	// Place directory
	PostgresDSN string

	// Metrics
	PushgatewayURL string

	HTTPTimeout   time.Duration
	MessageFooter string

	// Defaults are the search settings every user starts from.
	Defaults entity.SearchSettings
}

// chatID tolerates both quoted and bare numeric chat identifiers in the
// config file; Telegram chat ids are numbers that people quote irregularly.
type chatID string

func (c *chatID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		*c = chatID(s)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("chat id must be a string or number: %w", err)
	}
	*c = chatID(strconv.FormatInt(n, 10))
	return nil
}

// fileConfig mirrors the configuration file document. YAML being a superset
// of JSON, both config.yaml and a legacy config.json parse here.
type fileConfig struct {
	entity.SearchSettings `yaml:",inline"`

	AviasalesToken   string `yaml:"aviasales_token"`
	TelegramBotToken string `yaml:"telegram_bot_token"`
	AdminChatID      chatID `yaml:"admin_chat_id"`
	TelegramChatID   chatID `yaml:"telegram_chat_id"`
	GistID           string `yaml:"gist_id"`
	StateFile        string `yaml:"state_file"`
	MessageFooter    string `yaml:"message_footer"`
}

// LoadConfig resolves the effective configuration: defaults, then the config
// file at path (missing file is fine), then environment variables on top.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AviasalesAPIBase: defaultAviasalesAPIBase,
		TelegramAPIBase:  defaultTelegramAPIBase,
		TelegramSendRPS:  defaultTelegramSendRPS,
		StateFile:        defaultStateFile,
		MongoDB:          defaultMongoDB,
		HTTPTimeout:      30 * time.Second,
		Defaults:         entity.DefaultSearchSettings(),
	}

	if err := applyFile(config, path); err != nil {
		return nil, err
	}
	applyEnv(config)

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyFile overlays the config file on top of the defaults. A missing file
// leaves the defaults in place; an unreadable or unparsable one is fatal.
func applyFile(config *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &entity.ConfigError{Field: path, Reason: err.Error()}
	}

	fc := fileConfig{SearchSettings: config.Defaults}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &entity.ConfigError{Field: path, Reason: fmt.Sprintf("parse: %v", err)}
	}

	config.Defaults = fc.SearchSettings
	if fc.AviasalesToken != "" {
		config.AviasalesToken = fc.AviasalesToken
	}
	if fc.TelegramBotToken != "" {
		config.TelegramBotToken = fc.TelegramBotToken
	}
	// Legacy: treat telegram_chat_id as admin_chat_id
	admin := string(fc.AdminChatID)
	if admin == "" {
		admin = string(fc.TelegramChatID)
	}
	if admin != "" {
		config.AdminChatID = admin
	}
	if fc.GistID != "" {
		config.GistID = fc.GistID
	}
	if fc.StateFile != "" {
		config.StateFile = fc.StateFile
	}
	if fc.MessageFooter != "" {
		config.MessageFooter = fc.MessageFooter
	}
	return nil
}

// applyEnv overlays environment variables; they win over file values.
func applyEnv(config *Config) {
	config.AviasalesToken = getEnv("AVIASALES_TOKEN", config.AviasalesToken)
	config.AviasalesAPIBase = getEnv("AVIASALES_API_BASE", config.AviasalesAPIBase)

	config.TelegramBotToken = getEnv("TELEGRAM_BOT_TOKEN", config.TelegramBotToken)
	config.TelegramAPIBase = getEnv("TELEGRAM_API_BASE", config.TelegramAPIBase)
	config.TelegramSendRPS = getEnvAsFloat("TELEGRAM_SEND_RPS", config.TelegramSendRPS)
	config.AdminChatID = getEnv("TELEGRAM_CHAT_ID", config.AdminChatID)

	config.StateFile = getEnv("STATE_FILE", config.StateFile)
	config.GistID = getEnv("GIST_ID", config.GistID)
	config.GithubToken = getEnv("GH_TOKEN", config.GithubToken)
	config.MongoURI = getEnv("MONGODB_DSN", config.MongoURI)
	config.MongoDB = getEnv("MONGO_DB", config.MongoDB)

	config.PostgresDSN = getEnv("POSTGRES_DSN", config.PostgresDSN)
	config.PushgatewayURL = getEnv("PUSHGATEWAY_URL", config.PushgatewayURL)

	timeoutSec := int(config.HTTPTimeout / time.Second)
	config.HTTPTimeout = time.Duration(getEnvAsInt("HTTP_TIMEOUT", timeoutSec)) * time.Second

	config.MessageFooter = getEnv("MESSAGE_FOOTER", config.MessageFooter)
}

// validate rejects configurations that cannot run. Both credentials are
// required before any network call is attempted.
func validate(config *Config) error {
	if config.AviasalesToken == "" {
		return &entity.ConfigError{Field: "aviasales_token"}
	}
	if config.TelegramBotToken == "" {
		return &entity.ConfigError{Field: "telegram_bot_token"}
	}
	if config.Defaults.IncrementMinutes <= 0 {
		return &entity.ConfigError{Field: "increment_minutes", Reason: "must be positive"}
	}
	return nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
