package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jkoskela/fitweek/internal/e2etest"
	"github.com/jkoskela/fitweek/internal/logging"
	"github.com/jkoskela/fitweek/internal/testhelpers"
)

// TestAuth registers a throwaway account, cycles the session, and checks that
// an authenticated endpoint answers.
func TestAuth(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	creds, err := client.Register(ctx)
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if err = client.Logout(ctx); err != nil {
		return fmt.Errorf("logout user: %w", err)
	}
	if err = client.Login(ctx, creds); err != nil {
		return fmt.Errorf("login user: %w", err)
	}

	status, err := client.Get(ctx, "/api/profile", nil)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	// A fresh account has no profile yet, but the session must hold.
	if status != http.StatusNotFound {
		return fmt.Errorf("unexpected status code: %d", status)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestAuth(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing auth", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
