package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/showerbuddy/internal/cli"
	"github.com/terraincognita07/showerbuddy/internal/db"
)

const usage = `usage:
  showerbuddy                                  connect to the database and exit
  showerbuddy create-caregiver <email> [phone] register a caregiver with a temporary password
  showerbuddy reset-password <email>           replace a caregiver's password with a temporary one`

func main() {
	if err := loadDotEnv(".env"); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	opts, err := resolveDatabaseOptions()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := run(os.Args[1:], opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, opts db.Options, out io.Writer) error {
	if len(args) == 0 {
		return connectAndExit(opts, out)
	}

	switch args[0] {
	case "create-caregiver":
		if len(args) < 2 || len(args) > 3 {
			return errors.New(usage)
		}
		telephone := ""
		if len(args) == 3 {
			telephone = args[2]
		}
		return cli.RunCreateCaregiverCommand(opts, args[1], telephone, out)
	case "reset-password":
		if len(args) != 2 {
			return errors.New(usage)
		}
		return cli.RunResetPasswordCommand(opts, args[1], out)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

// connectAndExit binds the schema to an application instance, reports the
// connection and shuts the application down again.
func connectAndExit(opts db.Options, out io.Writer) error {
	app := fiber.New(fiber.Config{
		AppName:               "Shower Buddy",
		DisableStartupMessage: true,
	})

	if _, err := db.Connect(app, opts); err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	fmt.Fprintln(out, "Connected to DB.")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func resolveDatabaseOptions() (db.Options, error) {
	opts := db.DefaultOptions()
	opts.URI = getEnv("DATABASE_URL", db.DefaultURI)

	rawEcho := strings.TrimSpace(os.Getenv("DB_ECHO"))
	if rawEcho != "" {
		echo, err := strconv.ParseBool(rawEcho)
		if err != nil {
			return db.Options{}, fmt.Errorf("DB_ECHO must be a boolean, got %q", rawEcho)
		}
		opts.Echo = echo
	}
	return opts, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
