package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/cache/boltdb"
	"github.com/iudanet/shelfsync/internal/cache/rediscache"
	"github.com/iudanet/shelfsync/internal/cli"
	"github.com/iudanet/shelfsync/internal/feedsync"
	"github.com/iudanet/shelfsync/internal/identity"
	"github.com/iudanet/shelfsync/internal/iocli"
	"github.com/iudanet/shelfsync/internal/remote/httpstore"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "shelfsync.db", "Path to local database")
	redisAddr := flag.String("redis", "", "Redis address (uses Redis instead of the local file when set)")
	token := flag.String("token", "", "Access token (falls back to SHELFSYNC_TOKEN)")
	pageSize := flag.Int("page", 25, "Page size for feed pagination")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Контекст завершается по Ctrl+C (нужно команде watch)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	accessToken := *token
	if accessToken == "" {
		accessToken = os.Getenv("SHELFSYNC_TOKEN")
	}

	// Разбираем identity из токена; без токена работаем с публичной лентой
	who, err := identity.FromToken(accessToken)
	if err != nil {
		if !errors.Is(err, identity.ErrNoToken) {
			fmt.Fprintf(os.Stderr, "Invalid token: %v\n", err)
			os.Exit(1)
		}
		who = identity.Anonymous()
	}

	// Открываем локальный кэш
	storage, err := openStorage(ctx, *dbPath, *redisAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.Error("failed to close local cache", "error", err)
		}
	}()

	remoteStore := httpstore.NewClient(*serverURL, accessToken, logger)
	svc := feedsync.NewService(who, remoteStore, storage, logger)
	svc.SetPageSize(*pageSize)

	c := cli.New(svc, who, iocli.NewStdio())
	c.Run(ctx, command, args[1:])
}

// openStorage выбирает реализацию кэша: Redis при заданном адресе,
// иначе локальный файл BoltDB
func openStorage(ctx context.Context, dbPath, redisAddr string) (cache.Storage, error) {
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis is not reachable: %w", err)
		}
		return rediscache.New(client), nil
	}
	return boltdb.New(ctx, dbPath)
}

func printVersion() {
	fmt.Printf("ShelfSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
