// Command favorites manages the saved locations shown on the dashboard.
//
// Usage:
//
//	favorites list
//	favorites add <city>
//	favorites remove <city>
//	favorites last
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nimbusdash/nimbus/internal/config"
	"github.com/nimbusdash/nimbus/internal/db"
	"github.com/nimbusdash/nimbus/internal/favorites"
)

var errUsage = errors.New("usage: favorites list | add <city> | remove <city> | last")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: .env not loaded: %v", err)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer database.Close()

	return exec(ctx, favorites.New(database), args, out)
}

func exec(ctx context.Context, list *favorites.List, args []string, out io.Writer) error {
	cmd, rest := args[0], args[1:]
	name := strings.TrimSpace(strings.Join(rest, " "))

	switch cmd {
	case "list":
		names, err := list.All(ctx)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil

	case "add":
		if name == "" {
			return errUsage
		}
		added, err := list.Add(ctx, name)
		if err != nil {
			return err
		}
		if added {
			fmt.Fprintf(out, "Added %s\n", name)
		} else {
			fmt.Fprintf(out, "%s is already a favorite\n", name)
		}
		return nil

	case "remove":
		if name == "" {
			return errUsage
		}
		if err := list.Remove(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %s\n", name)
		return nil

	case "last":
		city, err := list.LastCity(ctx)
		if err != nil {
			return err
		}
		if city != "" {
			fmt.Fprintln(out, city)
		}
		return nil
	}
	return errUsage
}
