package main

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/pkg/config"
)

func TestRun_ReturnsStartupError(t *testing.T) {
	cfg := &config.Config{Mongo: config.MongoConfig{URI: "notmongo://localhost", Database: "test"}}

	err := run(context.Background(), cfg, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for an unusable mongo uri")
	}
	if !strings.Contains(err.Error(), "connect mongo") {
		t.Fatalf("unexpected error: %v", err)
	}
}
