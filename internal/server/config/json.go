package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
	"github.com/dmitrijs2005/taskboard/internal/timex"
)

// JsonConfig is the DTO for reading JSON configuration files. It uses
// timex.Duration for interval fields, which allows parsing both string
// values such as "1h" and integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	StorageBackend              string         `json:"storage_backend"`
	DataDir                     string         `json:"data_dir"`
	DatabaseDSN                 string         `json:"database_dsn"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config command-line flags into the provided Config. When neither flag
// is set, no JSON file is loaded. An unreadable or invalid file panics: a
// config the operator pointed at explicitly must not be silently ignored.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.StorageBackend = c.StorageBackend
	config.DataDir = c.DataDir
	config.DatabaseDSN = c.DatabaseDSN
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
