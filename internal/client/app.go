package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fhevm/internal/adapter"
	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/models"
)

// ConfigLoader reads the CLI configuration from env, the JSON file at path
// and the defaults.
type ConfigLoader func(path string) (*config.ClientConfig, error)

// AdapterFactory connects to the server described by cfg.
type AdapterFactory func(cfg config.ClientAdapter, log *logger.Logger) (adapter.ServerAdapter, error)

// EngineFactory builds the in-process client of --local commands.
type EngineFactory func(cfg *config.ClientConfig, log *logger.Logger) LocalEngine

// App is the command tree of the CLI.
type App struct {
	out    io.Writer
	errOut io.Writer

	loadConfig ConfigLoader
	newAdapter AdapterFactory
	newEngine  EngineFactory

	// populated before every command by prepare
	cfg     *config.ClientConfig
	server  adapter.ServerAdapter
	log     *logger.Logger
	flags   globalFlags
	build   models.AppBuildInfo
}

type globalFlags struct {
	configPath string
	address    string
	token      string
	local      bool
	verbose    bool
}

type Option func(*App)

func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out, a.errOut = out, errOut
	}
}

func WithConfigLoader(l ConfigLoader) Option {
	return func(a *App) { a.loadConfig = l }
}

func WithAdapterFactory(f AdapterFactory) Option {
	return func(a *App) { a.newAdapter = f }
}

func WithEngineFactory(f EngineFactory) Option {
	return func(a *App) { a.newEngine = f }
}

// NewApp builds the CLI. build is printed by the "version" command next to
// the server version.
func NewApp(build models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		out:        os.Stdout,
		errOut:     os.Stderr,
		loadConfig: config.GetClientConfig,
		newAdapter: adapter.NewHTTPServerAdapter,
		newEngine:  newFHEVMEngine,
		build:      build,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func newFHEVMEngine(cfg *config.ClientConfig, log *logger.Logger) LocalEngine {
	return fhevm.New(cfg.FHEVM, fhevm.WithLogger(log), fhevm.WithInitTimeout(cfg.InitTimeout))
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fhevm-cli",
		Short: "Encrypt and decrypt values with an FHEVM server",
		Long: `fhevm-cli talks to a running go-fhevm server.

Examples:
  fhevm-cli status
  fhevm-cli encrypt 42 --type uint8
  fhevm-cli decrypt --data 0x3432 --signature 0x...
  fhevm-cli encrypt 42 --local`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.prepare(cmd) },
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a JSON config file")
	pf.StringVar(&a.flags.address, "address", "", "server address (overrides ADAPTER_ADDRESS)")
	pf.StringVar(&a.flags.token, "token", "", "bearer token (overrides ADAPTER_TOKEN)")
	pf.BoolVar(&a.flags.local, "local", false, "run against an in-process client instead of a server")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		a.statusCommand(),
		a.infoCommand(),
		a.keysCommand(),
		a.encryptCommand(),
		a.decryptCommand(),
		a.batchEncryptCommand(),
		a.computeCommand(),
		a.verifyCommand(),
		a.operationsCommand(),
		a.tokenCommand(),
		a.versionCommand(),
	)

	return root
}

// prepare loads the config and connects the adapter.
func (a *App) prepare(cmd *cobra.Command) error {
	a.log = logger.NewClientLogger("fhevm-cli", a.errOut, a.flags.verbose)

	cfg, err := a.loadConfig(a.flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.flags.address != "" {
		cfg.Adapter.HTTPAddress = a.flags.address
	}
	if a.flags.token != "" {
		cfg.Adapter.Token = a.flags.token
	}
	a.cfg = cfg

	if a.flags.local {
		return nil
	}

	a.server, err = a.newAdapter(cfg.Adapter, a.log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}
	a.log.Debug().Str("command", cmd.Name()).Str("address", cfg.Adapter.HTTPAddress).Msg("prepared")
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
