// Package config loads signing settings for the command-line tools.
//
// Values are resolved in this order, later sources winning: built-in
// defaults, an optional YAML config file, a .env file, and PSS_-prefixed
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais/internal/crypto"
)

// EnvPrefix is the prefix for environment variables, e.g. PSS_KEY_BITS.
const EnvPrefix = "PSS"

const (
	keyKeyBits    = "key_bits"
	keyHash       = "hash"
	keySaltLength = "salt_length"
)

// Config holds the signing settings.
type Config struct {
	KeyBits    int
	Hash       crypto.Hash
	SaltLength int
}

// Options configures Load.
type Options struct {
	// ConfigFile is an optional YAML file. Empty means none.
	ConfigFile string
	// EnvFile is an optional .env file. A missing file is not an error.
	EnvFile string
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault(keyKeyBits, 2048)
	v.SetDefault(keyHash, crypto.SHA3_256.String())
	v.SetDefault(keySaltLength, crypto.DefaultSaltLength)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	h, err := crypto.ParseHash(v.GetString(keyHash))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KeyBits:    v.GetInt(keyKeyBits),
		Hash:       h,
		SaltLength: v.GetInt(keySaltLength),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for internal consistency.
func (c *Config) Validate() error {
	if c.KeyBits < crypto.MinKeyBits || c.KeyBits%2 != 0 {
		return fmt.Errorf("%w: key_bits = %d", crypto.ErrInvalidKeySize, c.KeyBits)
	}
	if c.SaltLength < 0 {
		return fmt.Errorf("%w: salt_length = %d", crypto.ErrInvalidSaltLength, c.SaltLength)
	}

	// emLen = ceil((bits-1)/8) must hold hash, salt and two fixed bytes
	emLen := (c.KeyBits - 1 + 7) / 8
	if need := c.Hash.Size() + c.SaltLength + 2; emLen < need {
		return fmt.Errorf("%w: %d-bit keys hold %d bytes, %s with a %d-byte salt needs %d",
			crypto.ErrEncodingTooShort, c.KeyBits, emLen, c.Hash, c.SaltLength, need)
	}
	return nil
}
