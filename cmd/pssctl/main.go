// Command pssctl generates RSA identities and signs or verifies messages
// with them. Key material and results are JSON on stdin/stdout.
//
// Settings come from PSS_KEY_BITS, PSS_HASH and PSS_SALT_LENGTH, a .env file
// in the working directory, or the YAML file named by PSS_CONFIG_FILE.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	assinatura "github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais"
	"github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais/internal/config"
)

const usage = `usage: pssctl <command> [args]

commands:
  keygen [name] [bits]          generate an identity (JSON to stdout)
  public-key                    identity on stdin, public key to stdout
  sign <message>                identity on stdin, signature to stdout
  verify <message> <signature>  public key on stdin, result to stdout
  sign-message <content> [user] identity on stdin, signed payload to stdout
  verify-message                {"message": ..., "publicKey": ...} on stdin`

// Config holds the I/O streams and settings for a run.
type Config struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Settings *config.Config
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func main() {
	cfg := DefaultConfig()

	settings, err := config.Load(config.Options{
		ConfigFile: os.Getenv("PSS_CONFIG_FILE"),
		EnvFile:    ".env",
	})
	if err != nil {
		fatal("load config: %v", err)
	}
	cfg.Settings = settings

	if err := run(os.Args, cfg); err != nil {
		fatal("%v", err)
	}
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}
	if cfg.Settings == nil {
		cfg.Settings = &config.Config{
			KeyBits:    assinatura.DefaultKeyBits,
			Hash:       assinatura.SHA3_256,
			SaltLength: assinatura.DefaultSaltLength,
		}
	}

	switch args[1] {
	case "keygen":
		name := "Bot"
		if len(args) > 2 {
			name = args[2]
		}
		bits := cfg.Settings.KeyBits
		if len(args) > 3 {
			b, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid key size %q: %w", args[3], err)
			}
			bits = b
		}
		return runKeygen(name, bits, cfg)
	case "public-key":
		return runPublicKey(cfg)
	case "sign":
		if len(args) < 3 {
			return errors.New("usage: pssctl sign <message>")
		}
		return runSign(args[2], cfg)
	case "verify":
		if len(args) < 4 {
			return errors.New("usage: pssctl verify <message> <signature>")
		}
		return runVerify(args[2], args[3], cfg)
	case "sign-message":
		if len(args) < 3 {
			return errors.New("usage: pssctl sign-message <content> [user]")
		}
		isUser := len(args) > 3 && args[3] == "user"
		return runSignMessage(args[2], isUser, cfg)
	case "verify-message":
		return runVerifyMessage(cfg)
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[1], usage)
	}
}

func (c *Config) options() []assinatura.Option {
	return []assinatura.Option{
		assinatura.WithHash(c.Settings.Hash),
		assinatura.WithSaltLength(c.Settings.SaltLength),
	}
}

func (c *Config) logger() *log.Logger {
	w := c.Stderr
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "pssctl: ", 0)
}

func runKeygen(name string, bits int, cfg *Config) error {
	start := time.Now()

	opts := append(cfg.options(), assinatura.WithKeyBits(bits))
	id, err := assinatura.NewIdentity(name, opts...)
	if err != nil {
		return fmt.Errorf("generate identity: %w", err)
	}

	cfg.logger().Printf("generated %d-bit key for %q in %v", id.KeyBits(), id.Name(), time.Since(start).Round(time.Millisecond))

	return writeJSON(cfg.Stdout, id.Export())
}

func readIdentity(cfg *Config) (*assinatura.Identity, error) {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	var exported assinatura.ExportedIdentity
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("parse identity: %w", err)
	}

	id, err := assinatura.ImportIdentity(&exported)
	if err != nil {
		return nil, fmt.Errorf("import identity: %w", err)
	}
	return id, nil
}

func runPublicKey(cfg *Config) error {
	id, err := readIdentity(cfg)
	if err != nil {
		return err
	}
	return writeJSON(cfg.Stdout, id.ExportPublicKey())
}

// SignatureOutput is the result of the sign command.
type SignatureOutput struct {
	Signature string `json:"signature"`
}

func runSign(message string, cfg *Config) error {
	id, err := readIdentity(cfg)
	if err != nil {
		return err
	}

	sig, err := id.Sign(message)
	if err != nil {
		return err
	}
	return writeJSON(cfg.Stdout, SignatureOutput{Signature: sig})
}

func readPublicKey(r io.Reader) (*assinatura.ExportedPublicKey, *assinatura.PublicKey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}

	var exported assinatura.ExportedPublicKey
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}

	pub, err := exported.PublicKey()
	if err != nil {
		return nil, nil, err
	}
	return &exported, pub, nil
}

func runVerify(message, signature string, cfg *Config) error {
	exported, pub, err := readPublicKey(cfg.Stdin)
	if err != nil {
		return err
	}

	valid := assinatura.VerifyBase64(message, signature, pub, exported.Options()...)
	return writeJSON(cfg.Stdout, assinatura.NewVerificationResult(valid))
}

func runSignMessage(content string, isUser bool, cfg *Config) error {
	id, err := readIdentity(cfg)
	if err != nil {
		return err
	}

	msg, err := id.SignMessage(content, isUser)
	if err != nil {
		return err
	}
	return writeJSON(cfg.Stdout, msg)
}

// VerifyMessageInput is the stdin document for verify-message.
type VerifyMessageInput struct {
	Message   *assinatura.SignedMessage     `json:"message"`
	PublicKey *assinatura.ExportedPublicKey `json:"publicKey"`
}

func runVerifyMessage(cfg *Config) error {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var input VerifyMessageInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if input.PublicKey == nil {
		return errors.New("parse input: publicKey is required")
	}

	pub, err := input.PublicKey.PublicKey()
	if err != nil {
		return err
	}

	valid := assinatura.VerifyMessage(input.Message, pub, input.PublicKey.Options()...)
	return writeJSON(cfg.Stdout, assinatura.NewVerificationResult(valid))
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
