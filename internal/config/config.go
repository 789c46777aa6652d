package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyBotToken     = "TELEGRAM_BOT_TOKEN"
	keyTargetWord   = "TARGET_WORD"
	keyProbability  = "PROBABILITY"
	keyDbPath       = "DB_PATH"
	keyPendingTTL   = "PENDING_TTL"
	keySendInterval = "SEND_INTERVAL"

	DefaultTargetWord   = "людей"
	DefaultProbability  = 5
	DefaultDbPath       = "data/bot.db"
	DefaultPendingTTL   = 5 * time.Minute
	DefaultSendInterval = 3 * time.Second
)

// ErrMissingToken is returned when no bot credential is configured.
var ErrMissingToken = errors.New(keyBotToken + " is required")

type Config struct {
	BotToken     string
	TargetWord   string
	Probability  int
	DbPath       string
	PendingTTL   time.Duration
	SendInterval time.Duration
}

// Load reads envFile (if it exists), then resolves every key from flags,
// environment and defaults, in that order of precedence.
func Load(envFile string, flags *pflag.FlagSet) (c Config, err error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(keyTargetWord, DefaultTargetWord)
	v.SetDefault(keyProbability, strconv.Itoa(DefaultProbability))
	v.SetDefault(keyDbPath, DefaultDbPath)
	v.SetDefault(keyPendingTTL, DefaultPendingTTL.String())
	v.SetDefault(keySendInterval, DefaultSendInterval.String())

	if flags != nil {
		if f := flags.Lookup("db"); f != nil {
			if err := v.BindPFlag(keyDbPath, f); err != nil {
				return Config{}, fmt.Errorf("bind --db: %w", err)
			}
		}
	}

	c = Config{
		BotToken:   strings.TrimSpace(v.GetString(keyBotToken)),
		TargetWord: strings.TrimSpace(v.GetString(keyTargetWord)),
		DbPath:     strings.TrimSpace(v.GetString(keyDbPath)),
	}

	if c.BotToken == "" {
		return c, ErrMissingToken
	}
	if c.TargetWord == "" {
		c.TargetWord = DefaultTargetWord
	}
	if c.DbPath == "" {
		return c, fmt.Errorf("%s must not be empty", keyDbPath)
	}

	c.Probability, err = strconv.Atoi(strings.TrimSpace(v.GetString(keyProbability)))
	if err != nil {
		return c, fmt.Errorf("%s must be an integer: %w", keyProbability, err)
	}
	if c.Probability < 0 || c.Probability > 100 {
		return c, fmt.Errorf("%s must be between 0 and 100, got %d", keyProbability, c.Probability)
	}

	c.PendingTTL, err = time.ParseDuration(strings.TrimSpace(v.GetString(keyPendingTTL)))
	if err != nil {
		return c, fmt.Errorf("%s: %w", keyPendingTTL, err)
	}
	if c.PendingTTL <= 0 {
		return c, fmt.Errorf("%s must be positive", keyPendingTTL)
	}

	c.SendInterval, err = time.ParseDuration(strings.TrimSpace(v.GetString(keySendInterval)))
	if err != nil {
		return c, fmt.Errorf("%s: %w", keySendInterval, err)
	}
	if c.SendInterval < 0 {
		return c, fmt.Errorf("%s must not be negative", keySendInterval)
	}

	return c, nil
}
