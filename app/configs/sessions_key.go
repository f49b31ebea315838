package configs

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

// LoadSessionKeysFromEnv decodes the cookie signing and encryption keys
// from the environment. Both are required; run `generate-keys` once to
// produce them.
func LoadSessionKeysFromEnv() (*SessionKeys, error) {
	env := LoadENV

	if env.AppAuthKey == "" {
		return nil, fmt.Errorf("APP_AUTH_KEY environment variable not set")
	}
	if env.AppEncKey == "" {
		return nil, fmt.Errorf("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(env.AppAuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY from Base64: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(env.AppEncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY from Base64: %w", err)
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding, must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}

	return &SessionKeys{AuthKey: authKey, EncKey: encKey}, nil
}

// GenerateAndPrintSessionKeys creates a fresh key pair and writes it to
// .env.new_keys for the operator to copy into .env. Regenerating keys
// invalidates every existing session cookie.
func GenerateAndPrintSessionKeys() error {
	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("could not generate authentication key")
	}

	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("could not generate encryption key")
	}

	authKeyBase64 := base64.URLEncoding.EncodeToString(authKey)
	encKeyBase64 := base64.URLEncoding.EncodeToString(encKey)

	fmt.Println("\n================================================")
	fmt.Println("Generated keys:")
	fmt.Printf("APP_AUTH_KEY=%s\n", authKeyBase64)
	fmt.Printf("APP_ENC_KEY=%s\n", encKeyBase64)
	fmt.Println("================================================")

	const envFilePath = ".env.new_keys"
	file, err := os.Create(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", envFilePath, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "APP_AUTH_KEY=%s\nAPP_ENC_KEY=%s\n", authKeyBase64, encKeyBase64); err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", envFilePath, err)
	}

	fmt.Printf("\nKeys have been written to '%s'. Copy them into your .env file.\n", envFilePath)

	return nil
}
