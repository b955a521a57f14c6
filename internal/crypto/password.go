// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-autonav/internal/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	argon2SaltLen = 16
	argon2KeyLen  = 32

	argon2Prefix = "$argon2id$"

	// Limits on parameters read back from stored hashes. Anything outside
	// them is treated as malformed instead of being derived.
	maxArgon2MemoryKiB   = 1 << 20 // 1 GiB
	maxArgon2Iterations  = 16
	maxArgon2Parallelism = 16
	minArgon2SaltLen     = 8
	maxArgon2SaltLen     = 64
	minArgon2KeyLen      = 16
	maxArgon2KeyLen      = 64

	maxBcryptCost = 14
)

// argon2Hasher is the [PasswordHasher] used for all new hashes. It produces
// PHC-formatted argon2id strings:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
//
// with salt and key in unpadded standard base64.
//
// Hashes in bcrypt format ($2a$, $2b$, $2y$) are still verified so that
// accounts migrated from the previous deployment keep working.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8

	rand io.Reader
}

// NewPasswordHasher constructs an argon2id [PasswordHasher] with the cost
// parameters from cfg.
func NewPasswordHasher(cfg config.PasswordHash) PasswordHasher {
	return &argon2Hasher{
		memory:      cfg.MemoryKiB,
		iterations:  cfg.Iterations,
		parallelism: cfg.Parallelism,
		rand:        rand.Reader,
	}
}

// Hash implements [PasswordHasher].
func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.iterations, h.memory, h.parallelism, argon2KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		h.memory, h.iterations, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *argon2Hasher) Verify(plaintext, hash string) bool {
	switch {
	case strings.HasPrefix(hash, argon2Prefix):
		return verifyArgon2(plaintext, hash)
	case isBcryptHash(hash):
		return verifyBcrypt(plaintext, hash)
	default:
		return false
	}
}

// argon2Params are the values decoded from a PHC string.
type argon2Params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func verifyArgon2(plaintext, hash string) bool {
	params, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(plaintext), params.salt, params.iterations, params.memory, params.parallelism, uint32(len(params.key)))

	return subtle.ConstantTimeCompare(key, params.key) == 1
}

func decodeArgon2Hash(hash string) (argon2Params, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return argon2Params{}, fmt.Errorf("unexpected number of hash segments: %d", len(parts))
	}

	version, err := parseParam(parts[2], "v", 32)
	if err != nil {
		return argon2Params{}, fmt.Errorf("error parsing version: %w", err)
	}
	if version != argon2.Version {
		return argon2Params{}, fmt.Errorf("unsupported argon2 version %d", version)
	}

	costs := strings.Split(parts[3], ",")
	if len(costs) != 3 {
		return argon2Params{}, fmt.Errorf("unexpected number of parameters: %d", len(costs))
	}
	memory, err := parseParam(costs[0], "m", 32)
	if err != nil {
		return argon2Params{}, fmt.Errorf("error parsing memory: %w", err)
	}
	iterations, err := parseParam(costs[1], "t", 32)
	if err != nil {
		return argon2Params{}, fmt.Errorf("error parsing iterations: %w", err)
	}
	parallelism, err := parseParam(costs[2], "p", 8)
	if err != nil {
		return argon2Params{}, fmt.Errorf("error parsing parallelism: %w", err)
	}

	if memory == 0 || memory > maxArgon2MemoryKiB ||
		iterations == 0 || iterations > maxArgon2Iterations ||
		parallelism == 0 || parallelism > maxArgon2Parallelism {
		return argon2Params{}, fmt.Errorf("parameters out of range: m=%d,t=%d,p=%d", memory, iterations, parallelism)
	}
	// argon2 raises memory below 8*p to 8*p
	if memory < 8*parallelism {
		return argon2Params{}, fmt.Errorf("memory %d too small for parallelism %d", memory, parallelism)
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return argon2Params{}, fmt.Errorf("error decoding salt: %w", err)
	}
	if len(salt) < minArgon2SaltLen || len(salt) > maxArgon2SaltLen {
		return argon2Params{}, fmt.Errorf("salt length %d out of range", len(salt))
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return argon2Params{}, fmt.Errorf("error decoding key: %w", err)
	}
	if len(key) < minArgon2KeyLen || len(key) > maxArgon2KeyLen {
		return argon2Params{}, fmt.Errorf("key length %d out of range", len(key))
	}

	return argon2Params{
		memory:      uint32(memory),
		iterations:  uint32(iterations),
		parallelism: uint8(parallelism),
		salt:        salt,
		key:         key,
	}, nil
}

// parseParam reads a "name=digits" segment. Signs, spaces and trailing
// characters are rejected.
func parseParam(segment, name string, bitSize int) (uint64, error) {
	value, ok := strings.CutPrefix(segment, name+"=")
	if !ok {
		return 0, fmt.Errorf("expected %s=<n>, got %q", name, segment)
	}
	if value == "" || strings.TrimLeft(value, "0123456789") != "" {
		return 0, fmt.Errorf("invalid %s value %q", name, value)
	}
	return strconv.ParseUint(value, 10, bitSize)
}

// verifyBcrypt checks legacy bcrypt hashes. Costs above maxBcryptCost are
// treated as malformed.
func verifyBcrypt(plaintext, hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost > maxBcryptCost {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}
