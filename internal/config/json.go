package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted
// from the JSON configuration file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey          string `json:"token_sign_key"`
		TokenSigningAlgorithm string `json:"token_signing_algorithm"`
		TokenExpireMinutes    int    `json:"token_expire_minutes"`
		TokenIssuer           string `json:"token_issuer"`
		CookieName            string `json:"cookie_name"`
		PositionSignKey       string `json:"position_sign_key"`
		PasswordHash          struct {
			MemoryKiB   uint32 `json:"memory_kib"`
			Iterations  uint32 `json:"iterations"`
			Parallelism uint8  `json:"parallelism"`
		} `json:"password_hash,omitempty"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:          jsonCfg.Auth.TokenSignKey,
			TokenSigningAlgorithm: jsonCfg.Auth.TokenSigningAlgorithm,
			TokenExpireMinutes:    jsonCfg.Auth.TokenExpireMinutes,
			TokenIssuer:           jsonCfg.Auth.TokenIssuer,
			CookieName:            jsonCfg.Auth.CookieName,
			PositionSignKey:       jsonCfg.Auth.PositionSignKey,
			PasswordHash: PasswordHash{
				MemoryKiB:   jsonCfg.Auth.PasswordHash.MemoryKiB,
				Iterations:  jsonCfg.Auth.PasswordHash.Iterations,
				Parallelism: jsonCfg.Auth.PasswordHash.Parallelism,
			},
			Version:  jsonCfg.Auth.Version,
			LogLevel: jsonCfg.Auth.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
