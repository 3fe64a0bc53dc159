package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/clariscan/internal/server"
	"github.com/ppiankov/clariscan/internal/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve exposes the analyzer over HTTP:
  GET  /                 service banner
  GET  /health           catalog size and persistence status
  POST /analyze          multipart "file" upload or raw text body
  POST /analyze/clause   {"text": "..."}
  POST /detect           {"text": "..."}
  GET  /rules            rule catalog (?risk_level=high)
  GET  /documents        stored analyses (requires --db)
  GET  /documents/{id}   one stored analysis with its clauses
  GET  /metrics          Prometheus metrics

Example:
  clariscan serve --addr :8000
  clariscan serve --db ./clariscan.db
  CLARISCAN_STORE_DSN=postgres://localhost/clariscan clariscan serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default from config, :8000)")
	serveCmd.Flags().String("db", "", "SQLite path or postgres:// DSN for persistence")
	serveCmd.Flags().StringSlice("cors-origin", nil, "allowed CORS origins (* for any)")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("store.dsn", serveCmd.Flags().Lookup("db"))
	_ = viper.BindPFlag("server.cors_origins", serveCmd.Flags().Lookup("cors-origin"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}

	var st *store.Store
	if cfg.Store.DSN != "" {
		st, err = store.Open(ctx, cfg.Store.DSN)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()
		fmt.Fprintf(os.Stderr, "✓ Persistence: %s\n", store.Driver(cfg.Store.DSN))
	} else {
		fmt.Fprintf(os.Stderr, "✓ Persistence: disabled\n")
	}

	fmt.Fprintf(os.Stderr, "✓ Rules loaded: %d\n", p.Analyzer().Catalog().Len())
	fmt.Fprintf(os.Stderr, "✓ Listening on %s\n\n", cfg.Server.Addr)

	return server.New(p, st, cfg.Server).ListenAndServe(ctx)
}
