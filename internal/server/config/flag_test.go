package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "all flags set", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-s", "secret", "-t", "90",
			"-k", "postgres", "-f", "/tmp/data", "-d", "db",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 90 * time.Minute,
				StorageBackend:              "postgres",
				DataDir:                     "/tmp/data",
				DatabaseDSN:                 "db",
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestParseFlags_KeepsExistingValuesWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-a", ":9999"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":9999", config.EndpointAddrHTTP)
	assert.Equal(t, "mysecretkey", config.SecretKey)
	assert.Equal(t, 1*time.Hour, config.AccessTokenValidityDuration)
	assert.Equal(t, StorageFile, config.StorageBackend)
}
