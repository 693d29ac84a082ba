package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	httpapi "mapgen/internal/server"
	"mapgen/internal/store"
	"mapgen/internal/terrain"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	addr := stringEnv("MAPGEN_ADDR", ":8080")
	defaults := terrain.DefaultConfig()
	defaults.Workers = intEnv("MAPGEN_WORKERS", runtime.NumCPU())

	h := httpapi.Handler{
		Store:    mustBuildStore(),
		Defaults: defaults,
		MaxSize:  intEnv("MAPGEN_MAX_SIZE", 512),
	}

	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("mapgen server listening on %s (max size %d)", addr, h.MaxSize)
	s.Spin()
}

func mustBuildStore() store.Store {
	dsn := strings.TrimSpace(os.Getenv("MAPGEN_DB_DSN"))
	if dsn == "" {
		log.Println("MAPGEN_DB_DSN not set, keeping maps in memory")
		return store.NewMemoryStore()
	}
	db, err := store.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	s := store.NewGormStore(db)
	if err := s.AutoMigrate(context.Background()); err != nil {
		log.Fatalf("migrate maps table: %v", err)
	}
	return s
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
