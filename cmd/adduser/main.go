// Command adduser creates a ledger account from the command line.
//
// Flags after "--" are passed to the server configuration loader, so the
// command reaches the same database as the server:
//
//	adduser -user alice -- -driver sqlite3 -d ledger.db
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/models"
	"golang.org/x/term"
)

var errUserExists = errors.New("user already exists")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	passwordFlag := fs.String("password", "", "Password (prompted when omitted)")
	admin := fs.Bool("admin", false, "Create an administrator")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> [-password <password>] [-admin] [-- server flags]")
		fs.PrintDefaults()
		return errors.New("missing required flag: user")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password cannot be empty")
	}

	cfg, err := config.LoadStructuredConfig(fs.Args())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Nop()
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer storages.Close()

	auth := service.NewAuthService(storages.UserRepository, cfg.App, log)

	var user models.User
	if *admin {
		var created bool
		user, created, err = auth.EnsureAdmin(ctx, *username, password)
		if err == nil && !created {
			err = errUserExists
		}
	} else {
		user, err = auth.RegisterUser(ctx, models.User{Username: *username, Password: password})
	}
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", *username, err)
	}

	fmt.Fprintf(stdout, "User %s created with ID %d (admin: %t)\n", user.Username, user.UserID, user.IsAdmin)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(password), nil
	}

	// pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
