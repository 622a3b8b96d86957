// Package config provides some utilities and structs to access
// configuration loaded via viper
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// BotTokenKey holds the slack bot token (xoxb-...), string value. Bound to SLACK_BOT_TOKEN
	BotTokenKey = "botToken"
	// AppTokenKey holds the slack app-level token (xapp-...) used by the socket mode
	// transport, string value. Bound to SLACK_APP_TOKEN
	AppTokenKey = "appToken"
	// SigningSecretKey holds the slack signing secret, string value. Bound to
	// SLACK_SIGNING_SECRET. The socket mode transport authenticates with the app
	// token but the secret remains part of the startup contract
	SigningSecretKey = "signingSecret"
	// ChannelKey holds the channel receiving the generated spec uploads, string value.
	// Bound to BUILD_BOT_CHANNEL
	ChannelKey = "channel"
	// HaltPipelineKey holds the operator halt switch, boolean-like string value.
	// Bound to HALT_PIPELINE
	HaltPipelineKey = "haltPipeline"
	// GeminiAPIKeyKey holds the gemini API key for the PM agent, string value.
	// Bound to GEMINI_API_KEY
	GeminiAPIKeyKey = "geminiAPIKey"
	// ModelKey holds the model identifier used by the PM agent, string value
	ModelKey = "model"
	// MaxAgentTurnsKey holds the bound on the PM agent's conversation turns, int value
	MaxAgentTurnsKey = "maxAgentTurns"
	// DebugKey is the debug mode of the bot, boolean value
	DebugKey = "debug"
	// UserInfoCacheSizeKey holds the number of entries to keep in the user info
	// cache, int value. Defaults to no caching
	UserInfoCacheSizeKey = "userInfoCacheSize"
)

const (
	defaultChannel       = "#build-bot"
	defaultModel         = "gemini-2.0-flash"
	defaultMaxAgentTurns = 4
)

// envBindings maps configuration keys to the environment variables they load from
var envBindings = map[string]string{
	BotTokenKey:      "SLACK_BOT_TOKEN",
	AppTokenKey:      "SLACK_APP_TOKEN",
	SigningSecretKey: "SLACK_SIGNING_SECRET",
	ChannelKey:       "BUILD_BOT_CHANNEL",
	HaltPipelineKey:  "HALT_PIPELINE",
	GeminiAPIKeyKey:  "GEMINI_API_KEY",
	ModelKey:         "SPECSCOT_MODEL",
	MaxAgentTurnsKey: "SPECSCOT_MAX_TURNS",
	DebugKey:         "SPECSCOT_DEBUG",
}

// requiredKeys are keys that must resolve to a non-empty value for the bot to start
var requiredKeys = []string{BotTokenKey, AppTokenKey, SigningSecretKey, GeminiAPIKeyKey}

// NewViperWithDefaults creates a new viper instance with defaults set on it
func NewViperWithDefaults() (v *viper.Viper) {
	v = viper.New()
	v = LayerConfigWithDefaults(v)

	return v
}

// LayerConfigWithDefaults layers the input viper instance with default values
// and environment bindings
func LayerConfigWithDefaults(v *viper.Viper) *viper.Viper {
	v.SetDefault(ChannelKey, defaultChannel)
	v.SetDefault(HaltPipelineKey, false)
	v.SetDefault(ModelKey, defaultModel)
	v.SetDefault(MaxAgentTurnsKey, defaultMaxAgentTurns)
	v.SetDefault(DebugKey, false)
	v.SetDefault(UserInfoCacheSizeKey, 0)

	for key, env := range envBindings {
		v.BindEnv(key, env)
	}

	return v
}

// ValidateRequired returns an error naming the first required key missing a value.
// This is what makes a missing token a startup failure rather than a runtime one
func ValidateRequired(v *viper.Viper) (err error) {
	for _, key := range requiredKeys {
		if v.GetString(key) == "" {
			return errors.Errorf("missing required configuration [%s] (environment variable [%s])", key, envBindings[key])
		}
	}

	return nil
}

// GetHaltPipeline parses the halt switch leniently so that operator values such
// as "1", "TRUE" or "t" all read as halted
func GetHaltPipeline(v *viper.Viper) (halted bool) {
	halted, err := cast.ToBoolE(v.Get(HaltPipelineKey))
	if err != nil {
		return false
	}

	return halted
}
