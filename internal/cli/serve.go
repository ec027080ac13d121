package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start the HTTP API server exposing a /api/solve endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		history, _ := cmd.Flags().GetString("history")

		fmt.Printf("Starting web server at http://%s:%s\n", host, port)

		server := web.NewServer(history)
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().String("history", "", "Record solves to a SQLite history file at this path")
	rootCmd.AddCommand(serveCmd)
}
