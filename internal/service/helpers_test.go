package service

import (
	"github.com/MKhiriev/go-autonav/internal/config"
)

// Cheap argon2id parameters so that tests using the real hasher stay fast.
var testHashParams = config.PasswordHash{MemoryKiB: 1024, Iterations: 1, Parallelism: 1}

var testAppConfig = config.App{
	TokenSignKey:          "test-signing-key-0123456789abcdef",
	TokenSigningAlgorithm: "HS256",
	TokenExpireMinutes:    1,
	PasswordHash:          testHashParams,
	Version:               "v1",
}

const (
	adminID = "0195f0a4-0000-7000-8000-000000000001"
	userID  = "0195f0a4-0000-7000-8000-000000000002"
	tagID   = "0195f0a4-0000-7000-8000-000000000003"
)

type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string {
	return f.id
}
