package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dretl/internal/checksum"
	"github.com/vvka-141/dretl/internal/cleaner"
	"github.com/vvka-141/dretl/internal/files/filesystem"
	"github.com/vvka-141/dretl/internal/files/loader"
	"github.com/vvka-141/dretl/internal/logging"
	"github.com/vvka-141/dretl/internal/services"
	"github.com/vvka-141/dretl/internal/store"
	"github.com/vvka-141/dretl/internal/ui"
	"github.com/vvka-141/dretl/pkg/dretl"
)

var runCmd = &cobra.Command{
	Use:   "run <messages_csv> <categories_csv> <database>",
	Short: "Load, clean and save the disaster-response datasets",
	Long: `Run executes the ETL job:

1. Loads the messages and categories CSV files and outer-joins them on the
   key column (default: id)
2. Splits the category column (default: categories) on ';', derives one
   label per token by dropping its last two characters, and decodes the
   final digit of each token into an integer indicator column
3. Removes exact duplicate rows
4. Saves the result into a table (default: disaster_texts) of the SQLite
   database file, created if absent

Configuration precedence: flags > environment (.env, DRETL_TABLE,
DRETL_IF_EXISTS) > dretl.yaml > defaults.

Examples:
  # Basic run
  dretl run disaster_messages.csv disaster_categories.csv DisasterResponse.db

  # Rebuild an existing table without the interactive prompt
  dretl run m.csv c.csv DisasterResponse.db --if-exists replace --force

  # Fail on duplicated identifiers, warn on rows without one
  dretl run m.csv c.csv out.db --duplicate-keys reject --missing-keys warn`,
	// Any argument count is accepted; a wrong count prints the usage text.
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

type runFlagValues struct {
	table         string
	ifExists      string
	force         bool
	categories    []string
	missingKeys   string
	duplicateKeys string
	configPath    string
	timeout       time.Duration
}

var runFlags runFlagValues

// isInteractive reports whether the approval prompt can be answered; tests stub it.
var isInteractive = ui.IsInteractive

// newFileSystem provides input file access; tests swap it for an in-memory one.
var newFileSystem = func() filesystem.FileSystemProvider {
	return filesystem.NewOSFileSystem()
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.table, "table", dretl.DefaultTableName,
		"Destination table name\n"+
			"Precedence: --table > $DRETL_TABLE > dretl.yaml")
	runCmd.Flags().StringVar(&runFlags.ifExists, "if-exists", "create",
		"What to do when the table exists: create|replace|append\n"+
			"create fails, replace drops and recreates (asks for confirmation),\n"+
			"append inserts if the columns match\n"+
			"Precedence: --if-exists > $DRETL_IF_EXISTS > dretl.yaml")
	runCmd.Flags().BoolVar(&runFlags.force, "force", false,
		"Skip the interactive approval prompt of --if-exists replace\n"+
			"A short countdown is shown instead")
	runCmd.Flags().StringSliceVar(&runFlags.categories, "categories", nil,
		"Explicit label schema, in column order\n"+
			"Example: --categories related,request,offer")
	runCmd.Flags().StringVar(&runFlags.missingKeys, "missing-keys", "accept",
		"Rows without an identifier: accept|warn|reject")
	runCmd.Flags().StringVar(&runFlags.duplicateKeys, "duplicate-keys", "accept",
		"Identifiers repeated within one input: accept|warn|reject")
	runCmd.Flags().StringVar(&runFlags.configPath, "config", "",
		"Path to the config file (default: ./dretl.yaml if present)")
	runCmd.Flags().DurationVar(&runFlags.timeout, "timeout", dretl.DefaultTimeout,
		"Deadline for the whole run, none by default\n"+
			"Examples: 30s, 5m, 1h30m")
}

// buildPipelineConfig builds a PipelineConfig from CLI flags, environment
// and dretl.yaml.
func buildPipelineConfig(cmd *cobra.Command, args []string, verbose bool) (dretl.PipelineConfig, error) {
	projectCfg, err := loadProjectConfig(runFlags.configPath)
	if err != nil {
		return dretl.PipelineConfig{}, err
	}

	cfg := dretl.PipelineConfig{
		MessagesPath:   args[0],
		CategoriesPath: args[1],
		DatabasePath:   args[2],
		TableName:      resolveString(cmd, "table", runFlags.table, EnvTable, projectCfg.Table),
		KeyColumn:      projectCfg.Key,
		CategoryColumn: projectCfg.CategoryColumn,
		Separator:      projectCfg.Separator,
		Labels:         projectCfg.Categories,
		Force:          runFlags.force,
		Verbose:        verbose,
	}
	if cmd.Flags().Changed("categories") {
		cfg.Labels = runFlags.categories
	}

	var errs []error

	cfg.IfExists, err = dretl.ParseWritePolicy(
		resolveString(cmd, "if-exists", runFlags.ifExists, EnvIfExists, projectCfg.IfExists))
	errs = append(errs, err)

	cfg.MissingKeys, err = dretl.ParseKeyPolicy(
		resolveString(cmd, "missing-keys", runFlags.missingKeys, "", projectCfg.MissingKeys))
	errs = append(errs, err)

	cfg.DuplicateKeys, err = dretl.ParseKeyPolicy(
		resolveString(cmd, "duplicate-keys", runFlags.duplicateKeys, "", projectCfg.DuplicateKeys))
	errs = append(errs, err)

	cfg.Timeout, err = resolveEffectiveTimeout(cmd, projectCfg, runFlags.timeout)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return dretl.PipelineConfig{}, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return dretl.PipelineConfig{}, err
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(cmd.ErrOrStderr(), "  Table: %s\n", cfg.TableName)
		fmt.Fprintf(cmd.ErrOrStderr(), "  If exists: %s\n", cfg.IfExists)
		fmt.Fprintf(cmd.ErrOrStderr(), "  Key column: %s\n", cfg.KeyColumn)
		fmt.Fprintf(cmd.ErrOrStderr(), "  Category column: %s (separator %q)\n", cfg.CategoryColumn, cfg.Separator)
		fmt.Fprintf(cmd.ErrOrStderr(), "  Key policies: missing=%s duplicate=%s\n", cfg.MissingKeys, cfg.DuplicateKeys)
		if cfg.Timeout > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "  Timeout: %s\n", cfg.Timeout)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "  Timeout: none\n")
		}
	}

	return cfg, nil
}

// newPipeline wires the loader, cleaner and writer for config.
// A replace run without --force needs a terminal to ask on; without one it
// fails before touching any file.
func newPipeline(cmd *cobra.Command, config dretl.PipelineConfig) (*services.PipelineService, error) {
	out := cmd.OutOrStdout()
	logger := logging.NewConsoleLoggerWithWriters(config.Verbose, out, cmd.ErrOrStderr())

	// Select approver implementation based on --force flag
	var approver dretl.Approver
	if config.IfExists == dretl.WritePolicyReplace {
		switch {
		case config.Force:
			approver = ui.NewForcedApprover(config.Verbose)
		case isInteractive():
			approver = ui.NewInteractiveApprover(config.Verbose)
		default:
			return nil, fmt.Errorf("replacing table %q needs confirmation but the session is not interactive; pass --force to confirm: %w",
				config.TableName, dretl.ErrApprovalDenied)
		}
	}

	csvLoader := loader.NewLoader(newFileSystem(), checksum.New(), logger, loader.Options{
		KeyColumn:     config.KeyColumn,
		MissingKeys:   config.MissingKeys,
		DuplicateKeys: config.DuplicateKeys,
	})
	labelCleaner := cleaner.NewCleaner(logger, cleaner.Options{
		CategoryColumn: config.CategoryColumn,
		Separator:      config.Separator,
		Labels:         config.Labels,
	})
	writer := store.NewSQLiteWriter(logger, approver, store.Options{
		TableName: config.TableName,
		Policy:    config.IfExists,
	})

	return services.NewPipelineService(csvLoader, labelCleaner, writer, logger,
		services.WithSuccessRenderer(func(msg string) string { return ui.Success(out, msg) })), nil
}

// runContext applies timeout as a deadline when it is positive.
func runContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

func runRun(cmd *cobra.Command, args []string) error {
	if !checkRunArgs(cmd.OutOrStdout(), args) {
		return nil
	}
	verbose := getVerboseFlag(cmd)

	config, err := buildPipelineConfig(cmd, args, verbose)
	if err != nil {
		return err
	}

	pipeline, err := newPipeline(cmd, config)
	if err != nil {
		return err
	}

	ctx, cancel := runContext(config.Timeout)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling run...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return pipeline.Run(ctx, config)
}
