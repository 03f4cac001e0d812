package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes every environment override, e.g. GOPAGINATOR_TOTAL.
const envPrefix = "GOPAGINATOR"

// Config holds the values shared by every command.
type Config struct {
	Total       int    `mapstructure:"total"`
	Page        int    `mapstructure:"page"`
	ContainerID string `mapstructure:"container_id"`
	LogLevel    string `mapstructure:"log_level"`
}

// loadConfig merges defaults, an optional config file named by
// GOPAGINATOR_CONFIG, environment variables and explicitly set flags, in
// increasing priority.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("total", 10)
	v.SetDefault("page", 1)
	v.SetDefault("container_id", "pager")
	v.SetDefault("log_level", "info")

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"total":        "total",
		"page":         "page",
		"container_id": "container-id",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}
