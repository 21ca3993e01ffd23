package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdsctl/rdsctl/internal/adapter"
	"github.com/rdsctl/rdsctl/internal/catalog"
	"github.com/rdsctl/rdsctl/internal/config"
	"github.com/rdsctl/rdsctl/internal/metrics"
	"github.com/rdsctl/rdsctl/internal/rds"
	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
	"github.com/rdsctl/rdsctl/pkg/utils"
)

const component = "cli"

// skipSetup marks commands that run without configuration, logging or
// clients.
const skipSetup = "rdsctl/skip-setup"

// App is the rdsctl command line host.
type App struct {
	Version string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// NewClients builds the client source; nil uses an rds.ClientManager.
	NewClients func(cfg *config.Configuration, logger *slog.Logger) adapter.ClientSource

	// Confirmer approves destructive operations; nil uses the terminal.
	Confirmer adapter.Confirmer

	flags globalFlags

	cfg       *config.Configuration
	logger    *slog.Logger
	logCloser io.Closer
	collector *metrics.Collector
	runner    *adapter.Runner
}

type globalFlags struct {
	configFile  string
	region      string
	profile     string
	endpoint    string
	output      string
	logLevel    string
	metricsFile string
}

// New returns an App bound to the process stdio.
func New(version string) *App {
	return &App{
		Version: version,
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// Execute runs the command line and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.NewRootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	a.finish()

	if err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree: one command per catalog
// operation, grouped by resource, plus the housekeeping commands.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rdsctl",
		Short: "Manage Amazon RDS resources from the command line",
		Long: `rdsctl exposes the Amazon RDS management API as commands.

Every command maps its flags onto one RDS request. Only the flags you pass
are sent; everything else keeps the service default. Destructive commands
ask for confirmation unless --force is given, and list commands follow
pagination markers until the results are drained or --max-items is
reached.`,
		Version:       a.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	root.SetVersionTemplate(`{{printf "rdsctl version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (default is $HOME/"+config.DefaultFileName+")")
	pf.StringVar(&a.flags.region, "region", "", "AWS region")
	pf.StringVar(&a.flags.profile, "profile", "", "shared configuration profile")
	pf.StringVar(&a.flags.endpoint, "endpoint", "", "RDS endpoint URL override")
	pf.StringVarP(&a.flags.output, "output", "o", "", "output format: json, yaml or text")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: DEBUG, INFO, WARN or ERROR")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	for _, g := range catalog.Groups() {
		root.AddGroup(&cobra.Group{ID: g.ID, Title: g.Title + ":"})
		for _, d := range g.Operations {
			root.AddCommand(a.newOperationCommand(d, g.ID))
		}
	}

	root.AddCommand(a.newOperationsCmd())
	root.AddCommand(a.newVersionCmd())
	root.AddCommand(a.newConfigCmd())

	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	if err := catalog.Validate(); err != nil {
		return apperrors.NewError(apperrors.ErrCodeInternalError, "invalid operation catalog").
			WithComponent(component).WithCause(err)
	}

	cfg, err := config.Load(a.flags.configFile)
	if err != nil {
		return apperrors.NewError(apperrors.ErrCodeConfigLoad, "failed to load configuration").
			WithComponent(component).WithCause(err)
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return apperrors.NewError(apperrors.ErrCodeInvalidConfig, err.Error()).
			WithComponent(component)
	}
	a.cfg = cfg

	logger, closer, err := utils.SetupLogging(cfg.LoggingConfig(), a.Err)
	if err != nil {
		return apperrors.NewError(apperrors.ErrCodeInvalidConfig, "failed to set up logging").
			WithComponent(component).WithCause(err)
	}
	a.logger, a.logCloser = logger, closer

	profile := cfg.AWS.Profile
	if profile == "" {
		profile = "default"
	}
	a.collector, err = metrics.NewCollector(&metrics.Config{
		Enabled:   cfg.Global.MetricsFile != "",
		Namespace: "rdsctl",
		Labels:    map[string]string{"profile": profile},
	})
	if err != nil {
		return apperrors.NewError(apperrors.ErrCodeInternalError, "failed to create metrics collector").
			WithComponent(component).WithCause(err)
	}

	var clients adapter.ClientSource
	if a.NewClients != nil {
		clients = a.NewClients(cfg, logger)
	} else {
		clients = rds.NewClientManager(cfg.ClientConfig(), logger)
	}

	confirmer := a.Confirmer
	if confirmer == nil {
		confirmer = NewTerminalConfirmer(a.In, a.Err)
	}

	a.runner = adapter.NewRunner(clients,
		adapter.WithConfirmer(confirmer),
		adapter.WithPageObserver(progressLogger{logger: logger.With("component", component)}),
		adapter.WithRecorder(a.collector),
		adapter.WithLogger(logger),
	)
	return nil
}

// applyFlags lets explicitly given global flags override the file and
// environment.
func (a *App) applyFlags(cmd *cobra.Command, cfg *config.Configuration) {
	flags := cmd.Flags()
	if flags.Changed("region") {
		cfg.AWS.Region = a.flags.region
	}
	if flags.Changed("profile") {
		cfg.AWS.Profile = a.flags.profile
	}
	if flags.Changed("endpoint") {
		cfg.AWS.Endpoint = a.flags.endpoint
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.flags.output
	}
	if flags.Changed("log-level") {
		cfg.Global.LogLevel = a.flags.logLevel
	}
	if flags.Changed("metrics-file") {
		cfg.Global.MetricsFile = a.flags.metricsFile
	}
}

// finish flushes metrics and closes the log file.
func (a *App) finish() {
	if a.collector != nil {
		a.logSummary()
		if a.collector.Enabled() {
			if err := a.writeMetrics(a.cfg.Global.MetricsFile); err != nil {
				a.logger.Warn("failed to write metrics", "path", a.cfg.Global.MetricsFile, "error", err)
			}
		}
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

// logSummary logs the per-operation totals of this process at debug level.
func (a *App) logSummary() {
	totals := a.collector.Snapshot()
	for _, name := range a.collector.Operations() {
		op := totals[name]
		a.logger.Debug("operation summary",
			"operation", name,
			"count", op.Count,
			"errors", op.Errors,
			"refused", op.Refused,
			"pages", op.Pages,
			"items", op.Items,
			"avg_duration", op.AvgDuration)
	}
}

func (a *App) writeMetrics(path string) error {
	path, err := utils.ExpandHome(path)
	if err != nil {
		return err
	}
	if err := utils.ValidatePath(path); err != nil {
		return err
	}
	return a.collector.WriteTextfile(path)
}

func (a *App) reportError(err error) {
	var adapterErr *apperrors.AdapterError
	if errors.As(err, &adapterErr) {
		fmt.Fprintln(a.Err, adapterErr.DetailedDiagnostic())
		return
	}

	fmt.Fprintf(a.Err, "Error: %v\n", err)
	if code := apperrors.ServiceCode(err); code != "" {
		fmt.Fprintf(a.Err, "Code: %s\n", code)
	}
	if id := apperrors.ServiceRequestID(err); id != "" {
		fmt.Fprintf(a.Err, "RequestID: %s\n", id)
	}
}
