// Command chatctl inspects and seeds a chat store from the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"teammate-chat/infrastructure/storage"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH"`
	JWTSecret         string        `env:"JWT_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

var (
	config  Config
	dbPath  string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:           "chatctl",
	Short:         "Inspect and seed the chat store",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.Disable()
		}
		if dbPath == "" {
			dbPath = config.BadgerFilepath
		}
		return nil
	},
}

func init() {
	_ = godotenv.Load()
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the badger directory (defaults to BADGER_FILEPATH)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("error: %v", err))
		os.Exit(1)
	}
}

// openDB opens the store read-only unless writable is set. Read-only opens
// work while the master holds the lock.
func openDB(writable bool) (*badger.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("no database path: set --db or BADGER_FILEPATH")
	}
	db, err := storage.Open(storage.OpenOptions{Path: dbPath, ReadOnly: !writable})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	return db, nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func shortTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
