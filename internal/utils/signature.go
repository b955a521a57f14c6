package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// SignatureHeader carries the hex encoded HMAC-SHA256 of a request body.
const SignatureHeader = "HashSHA256"

// BodySigner computes and checks HMAC-SHA256 signatures of request bodies
// under a fixed key. It keeps a pool of HMAC instances and is safe for
// concurrent use.
type BodySigner struct {
	pool sync.Pool
}

// NewBodySigner returns a signer for key.
//
// Example usage:
//
//	signer := utils.NewBodySigner([]byte("shared-secret"))
//	req.Header.Set(utils.SignatureHeader, signer.SignHex(body))
func NewBodySigner(key []byte) *BodySigner {
	k := append([]byte(nil), key...)
	return &BodySigner{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, k)
			},
		},
	}
}

// Sign returns the raw HMAC-SHA256 digest of data.
func (s *BodySigner) Sign(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// SignHex returns the hex-encoded HMAC-SHA256 digest of data.
func (s *BodySigner) SignHex(data []byte) string {
	return hex.EncodeToString(s.Sign(data))
}

// Verify reports whether signature is the hex-encoded digest of data.
// The comparison is constant-time.
func (s *BodySigner) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Sign(data))
}
