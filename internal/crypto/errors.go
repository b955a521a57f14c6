package crypto

import "errors"

var (
	// ErrInvalidToken is the single failure kind of [TokenCodec.Decode].
	// Malformed, forged, expired and wrongly signed tokens are not told apart.
	ErrInvalidToken = errors.New("missing, invalid, or expired token")

	// ErrEmptyPassword is returned by [PasswordHasher.Hash] for an empty plaintext.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrUnsupportedAlgorithm is returned by [NewTokenCodec] for algorithms
	// other than HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")

	// ErrEmptySecret is returned by [NewTokenCodec] when no secret is given.
	ErrEmptySecret = errors.New("token signing secret is empty")
)
