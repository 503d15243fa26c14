package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"teammate-chat/infrastructure/storage"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/spf13/cobra"
)

var inspectPort int

func init() {
	inspectCmd.Flags().IntVar(&inspectPort, "port", 8081, "port of the web inspector")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Browse the store in a read-only web inspector",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(false)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		endpoint := "/inspect"
		fmt.Fprintln(cmd.OutOrStdout(),
			color.Green.Sprintf("Viewer started at http://localhost:%d%s", inspectPort, endpoint))
		database.StartDebugServer(db, inspectPort, endpoint, recordMapper)
		<-ctx.Done()
		return nil
	},
}

func recordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	record, err := storage.Describe(key, val)
	row.Type = record.Kind
	if err != nil {
		row.Detail = "Error: decode failed"
		return row
	}
	row.Detail = record.Detail
	return row
}
