// Package secrets seals and opens small credential payloads with
// AES-256-GCM. Analytics provider credentials are stored sealed and
// opened only for the duration of a user's checkpoint sub-batch.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// KeyEnv names the environment variable holding the hex-encoded
// 32-byte sealing key.
const KeyEnv = "CREDENTIALS_KEY"

// Box seals and opens credential payloads.
type Box struct {
	aead cipher.AEAD
}

// NewBoxFromEnv builds a Box from the CREDENTIALS_KEY env var.
func NewBoxFromEnv() (*Box, error) {
	raw := os.Getenv(KeyEnv)
	if raw == "" {
		return nil, fmt.Errorf("%s is not set", KeyEnv)
	}
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex: %w", KeyEnv, err)
	}
	return NewBox(key)
}

// NewBox builds a Box from a raw 32-byte key.
func NewBox(key []byte) (*Box, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("sealing key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to init GCM: %w", err)
	}
	return &Box{aead: aead}, nil
}

// Seal encrypts plaintext; the nonce is prepended to the ciphertext.
func (b *Box) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a payload produced by Seal.
func (b *Box) Open(sealed []byte) ([]byte, error) {
	ns := b.aead.NonceSize()
	if len(sealed) < ns {
		return nil, fmt.Errorf("sealed payload too short")
	}
	plaintext, err := b.aead.Open(nil, sealed[:ns], sealed[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open sealed payload: %w", err)
	}
	return plaintext, nil
}
