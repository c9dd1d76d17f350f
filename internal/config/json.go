package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret     string   `json:"session_secret"`
		SessionCookieName string   `json:"session_cookie_name"`
		SessionLifetime   Duration `json:"session_lifetime"`
		SessionSecure     bool     `json:"session_secure"`
		AllowedOrigin     string   `json:"allowed_origin"`
		StaticDir         string   `json:"static_dir"`
		ExposeErrors      bool     `json:"expose_errors"`
		LogLevel          string   `json:"log_level"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			UploadDir     string `json:"upload_dir"`
			MaxUploadSize int64  `json:"max_upload_size"`
		} `json:"files,omitempty"`

		S3 struct {
			Region    string `json:"region"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Endpoint  string `json:"endpoint"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`
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
			SessionSecret:     jsonCfg.App.SessionSecret,
			SessionCookieName: jsonCfg.App.SessionCookieName,
			SessionLifetime:   time.Duration(jsonCfg.App.SessionLifetime),
			SessionSecure:     jsonCfg.App.SessionSecure,
			AllowedOrigin:     jsonCfg.App.AllowedOrigin,
			StaticDir:         jsonCfg.App.StaticDir,
			ExposeErrors:      jsonCfg.App.ExposeErrors,
			LogLevel:          jsonCfg.App.LogLevel,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:       jsonCfg.Storage.Files.Backend,
				UploadDir:     jsonCfg.Storage.Files.UploadDir,
				MaxUploadSize: jsonCfg.Storage.Files.MaxUploadSize,
			},
			S3: S3{
				Region:    jsonCfg.Storage.S3.Region,
				Bucket:    jsonCfg.Storage.S3.Bucket,
				AccessKey: jsonCfg.Storage.S3.AccessKey,
				SecretKey: jsonCfg.Storage.S3.SecretKey,
				Endpoint:  jsonCfg.Storage.S3.Endpoint,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
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
