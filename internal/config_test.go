package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("AUTH_SECRET", "a-secret-of-sixteen-bytes")
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	setRequired(t)

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(3, config.DefaultMinPartySize)
	req.Equal(5, config.DefaultMaxPartySize)
	req.Equal(12*time.Hour, config.AuthTokenDuration)
	req.Equal("0.0.0.0:5000", config.HTTPAddr())
	req.Empty(config.BannedWordList())
	req.Empty(config.FrontendPath)
}

func TestLoadConfig_FrontendPath(t *testing.T) {
	req := require.New(t)
	setRequired(t)
	dir := t.TempDir()
	t.Setenv("FRONTEND_PATH", dir)

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(dir, config.FrontendPath)
}

func TestLoadConfig_Overrides(t *testing.T) {
	req := require.New(t)
	setRequired(t)
	t.Setenv("DEFAULT_MIN_PARTY_SIZE", "2")
	t.Setenv("DEFAULT_MAX_PARTY_SIZE", "4")
	t.Setenv("BANNED_WORDS", "goblin, troll,,")
	t.Setenv("RESTART_INTERVAL", "1s")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(2, config.PartyConfig().MinSize)
	req.Equal(4, config.PartyConfig().MaxSize)
	req.Equal([]string{"goblin", "troll"}, config.BannedWordList())
	req.Equal(time.Second, config.RestartInterval)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		description string
		key, value  string
	}{
		{"min greater than max", "DEFAULT_MIN_PARTY_SIZE", "9"},
		{"censor is a word", "CENSOR_CHARACTER", "**"},
		{"short secret", "AUTH_SECRET", "short"},
		{"non positive restart", "RESTART_INTERVAL", "0s"},
		{"missing frontend directory", "FRONTEND_PATH", "/does/not/exist"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("AUTH_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}
