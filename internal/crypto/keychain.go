// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks values produced by [keyChain.Seal].
const sealedPrefix = "sealed:v1:"

// keyDerivationSalt domain-separates the sealing key from other uses of the
// server secret.
const keyDerivationSalt = "go-ledger-chat/stored-secrets"

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	aead cipher.AEAD
}

// NewKeyChain derives the sealing key from secret with Argon2id using the
// OWASP (2024) second recommended profile:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
func NewKeyChain(secret string) (KeyChain, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	k := &keyChain{
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
		argonKeyLen:  32, // 256 bits
	}

	block, err := aes.NewCipher(k.deriveKey(secret))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	k.aead, err = cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return k, nil
}

func (k *keyChain) deriveKey(secret string) []byte {
	return argon2.IDKey(
		[]byte(secret),
		[]byte(keyDerivationSalt),
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Seal implements [KeyChain].
func (k *keyChain) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// nonce || ciphertext
	blob := k.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeyChain].
func (k *keyChain) Open(value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, sealedPrefix)
	if !ok {
		return value, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCannotOpen, err)
	}

	nonceSize := k.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrCannotOpen)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// a failure here means the server secret changed or the value was
	// tampered with
	plaintext, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCannotOpen, err)
	}

	return string(plaintext), nil
}
