// stock-admin logs in to the stock API and runs one admin operation per
// invocation, printing the result as indented JSON.
//
// Configuration comes from the environment (or a .env file):
//
//	STOCK_API_BASE_URL      base URL of the stock API (required)
//	STOCK_API_TIMEOUT_SECONDS
//	STOCK_ADMIN_USERNAME
//	STOCK_ADMIN_PASSWORD
//	LOG_LEVEL, LOG_FORMAT
//
// Global flags override the environment.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stock-admin/internal/apiclient"
	"stock-admin/internal/config"
	"stock-admin/internal/model"
	"stock-admin/internal/session"

	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// usageError marks a mistake in the command line; it exits with exitUsage.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	global := pflag.NewFlagSet("stock-admin", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	baseURL := global.String("base-url", cfg.API.BaseURL, "base URL of the stock API")
	username := global.StringP("username", "u", cfg.Credentials.Username, "admin username")
	password := global.StringP("password", "p", cfg.Credentials.Password, "admin password")
	timeout := global.Duration("timeout", cfg.API.Timeout, "per-request timeout (0 disables)")
	global.Usage = func() { printUsage(stderr, global) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cmd, err := parseCommand(global.Args(), stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr, global)
		return exitUsage
	}

	cfg.API.BaseURL = strings.TrimRight(*baseURL, "/")
	cfg.API.Timeout = *timeout
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if *username == "" {
		fmt.Fprintln(stderr, "Error: username is required (--username or STOCK_ADMIN_USERNAME)")
		return exitUsage
	}

	logger := config.NewLogger(cfg.Logger, stderr)

	store := session.NewStore(nil, logger)
	client := apiclient.New(cfg.API.BaseURL, store, logger, apiclient.WithTimeout(cfg.API.Timeout))
	store.SetAuthenticator(client)

	if !store.Login(ctx, *username, *password) {
		fmt.Fprintf(stderr, "Error: %s\n", store.LastError())
		return exitFailure
	}
	defer store.Logout()

	result, err := cmd.run(ctx, client)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if model.IsUnauthorized(err) {
			fmt.Fprintln(stderr, "The server rejected the session token; log in again.")
		}
		return exitFailure
	}

	if err := printResult(stdout, result); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	return exitOK
}

// printResult writes JSON results indented and plain messages as a line.
func printResult(w io.Writer, result any) error {
	switch v := result.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func printUsage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprint(w, `Usage: stock-admin [global flags] <command> [flags]

Commands:
  categories list
  categories create --name NAME
  categories update --id ID --name NAME
  categories delete --id ID
  products list
  products create --name NAME --category-id ID [--image-url URL] [--quantity N]
  products update --id ID --name NAME --category-id ID [--image-url URL] [--quantity N]
  products delete --id ID
  admin refill-mocks
  admin clear-data

Global flags:
`)
	fmt.Fprint(w, global.FlagUsages())
}
