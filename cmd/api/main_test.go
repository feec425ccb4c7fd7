package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/openci/openci-backend/config"
)

func TestRun_DatabaseUnavailable(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Database: config.DatabaseConfig{
			Driver: "postgres",
			DSN:    "postgres://openci@127.0.0.1:1/openci?sslmode=disable&connect_timeout=1",
		},
		App: config.AppConfig{Environment: "test"},
	}

	err := run(cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "db connect")
}
