// Package secrets seals credentials before they are written to the store.
package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedPrefix = "sb1:"
	nonceSize    = 24
)

var (
	ErrMalformedSecret = errors.New("malformed sealed secret")
	ErrOpenFailed      = errors.New("failed to open sealed secret")
)

// Sealer encrypts and decrypts short secrets with NaCl secretbox.
// A Sealer built from an empty key stores values as-is.
type Sealer struct {
	key     [32]byte
	enabled bool
}

func NewSealer(key string) *Sealer {
	if key == "" {
		return &Sealer{}
	}
	return &Sealer{key: sha256.Sum256([]byte(key)), enabled: true}
}

func (s *Sealer) Enabled() bool {
	return s.enabled
}

// Seal returns "sb1:" followed by base64(nonce || box). Empty input stays empty.
func (s *Sealer) Seal(plaintext string) (string, error) {
	if !s.enabled || plaintext == "" {
		return plaintext, nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Values without the sealed prefix are returned unchanged.
func (s *Sealer) Open(value string) (string, error) {
	if !strings.HasPrefix(value, sealedPrefix) {
		return value, nil
	}
	if !s.enabled {
		return "", ErrOpenFailed
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedSecret, err)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrMalformedSecret
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plaintext, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrOpenFailed
	}
	return string(plaintext), nil
}
