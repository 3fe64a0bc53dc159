package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/clariscan/internal/watch"
)

var watchExisting bool

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Analyze contracts as they are dropped into a directory",
	Long: `Watch monitors a directory and analyzes every new or changed PDF, HTML
or text file once it has stopped changing. A JSON report named after the
file is written to the output directory.

Example:
  clariscan watch ./inbox
  clariscan watch ./inbox --output-dir ./reports --existing`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().String("output-dir", "", "output directory for reports (default from config)")
	watchCmd.Flags().Duration("debounce", 0, "quiet period before a changed file is analyzed")
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "also analyze files already in the directory")
	watchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")

	_ = viper.BindPFlag("watch.output_dir", watchCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}

	w, err := watch.NewDirWatcher(cfg.Watch, args[0], p, p.Renderer())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Watching %s\n", args[0])
	fmt.Fprintf(os.Stderr, "✓ Reports go to %s\n\n", w.OutputDir())

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(cmd.Context(), watchExisting) }()

	for res := range w.Results() {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%s, %v)\n", res.Path, res.Output, res.Report.Status, res.Duration.Round(time.Millisecond))
	}
	return <-errCh
}
