package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	s.T().Setenv("SERVER_PORT", "")
	s.T().Setenv("JWT_AUDIENCE", "")
	s.T().Setenv("RUN_MIGRATIONS", "")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	s.Equal("8080", cfg.Server.Port)
	s.Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Equal("authenticated", cfg.Auth.Audience)
	s.True(cfg.Database.RunMigrations)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
}

func (s *ConfigTestSuite) TestLoad_FromEnvironment() {
	s.T().Setenv("SERVER_PORT", "9090")
	s.T().Setenv("DB_MAX_CONNECTIONS", "7")
	s.T().Setenv("DB_CONN_MAX_LIFETIME", "10m")
	s.T().Setenv("RUN_MIGRATIONS", "false")
	s.T().Setenv("JWT_SECRET", "secret")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	s.Equal("9090", cfg.Server.Port)
	s.Equal(7, cfg.Database.MaxConnections)
	s.Equal(10*time.Minute, cfg.Database.ConnMaxLifetime)
	s.False(cfg.Database.RunMigrations)
	s.Equal("secret", cfg.Auth.JWTSecret)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func (s *ConfigTestSuite) TestLoad_InvalidNumbersFallBack() {
	s.T().Setenv("DB_MAX_CONNECTIONS", "many")
	s.T().Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	s.Equal(25, cfg.Database.MaxConnections)
	s.Equal(15*time.Second, cfg.Server.ReadTimeout)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "development without secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "" },
			wantErr: false,
		},
		{
			name: "production without secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Auth.JWTSecret = ""
			},
			wantErr: true,
		},
		{
			name:    "non-positive rate limit",
			mutate:  func(c *Config) { c.Security.RateLimitPerSecond = 0 },
			wantErr: true,
		},
		{
			name:    "burst below rate",
			mutate:  func(c *Config) { c.Security.RateLimitBurst = 1 },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := &Config{
				Server:   ServerConfig{Environment: "development"},
				Auth:     AuthConfig{JWTSecret: "secret"},
				Security: SecurityConfig{RateLimitPerSecond: 10, RateLimitBurst: 20},
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ConfigTestSuite) TestSlogLevel() {
	s.Equal(slog.LevelDebug, (&LogConfig{Level: "DEBUG"}).SlogLevel())
	s.Equal(slog.LevelWarn, (&LogConfig{Level: "warning"}).SlogLevel())
	s.Equal(slog.LevelError, (&LogConfig{Level: "error"}).SlogLevel())
	s.Equal(slog.LevelInfo, (&LogConfig{Level: "verbose"}).SlogLevel())
}

func (s *ConfigTestSuite) TestLoadDotEnv_DoesNotOverrideEnvironment() {
	dir := s.T().TempDir()
	file := filepath.Join(dir, "test.env")
	s.Require().NoError(os.WriteFile(file, []byte("LEDGER_TEST_A=from-file\nLEDGER_TEST_B=from-file\n"), 0o600))

	s.T().Setenv("LEDGER_TEST_A", "from-env")
	s.T().Setenv("LEDGER_TEST_B", "")
	s.Require().NoError(os.Unsetenv("LEDGER_TEST_B"))

	LoadDotEnv(file, filepath.Join(dir, "missing.env"))

	s.Equal("from-env", os.Getenv("LEDGER_TEST_A"))
	s.Equal("from-file", os.Getenv("LEDGER_TEST_B"))
	s.Require().NoError(os.Unsetenv("LEDGER_TEST_B"))
}
