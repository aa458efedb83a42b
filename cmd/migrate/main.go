package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"banksystem/internal/config"
	"banksystem/internal/logger"
	"banksystem/internal/repository"
)

const usage = `usage: migrate <command>

Applies the audit database migrations.
Commands: up, down, status, redo`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.NewMigrate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.ServiceName+"-migrate", cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Info("running audit migration", zap.String("command", command))
	if err := repository.RunMigrations(ctx, cfg.DSN(), command, log); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}
