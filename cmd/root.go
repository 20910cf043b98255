package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mark3labs/homeinfo/internal/address"
	"github.com/mark3labs/homeinfo/internal/app"
	"github.com/mark3labs/homeinfo/internal/config"
	"github.com/mark3labs/homeinfo/internal/models"
)

var (
	configFile     string
	modelFlag      string
	providerURL    string
	providerAPIKey string
	debugMode      bool
	detailedFlag   bool
	formatFlag     string
	timeout        time.Duration
	tlsSkipVerify  bool

	// Model generation parameters
	maxTokens   int
	temperature float32

	// configErr holds the outcome of InitConfig until a command runs.
	configErr error

	// Address fields; any left empty are prompted for
	streetFlag string
	cityFlag   string
	stateFlag  string
	zipFlag    string
)

// rootCmd looks up a single property. Address fields not given as flags are
// asked for interactively.
var rootCmd = &cobra.Command{
	Use:   "homeinfo",
	Short: "Look up a property and its nearby schools with an AI model",
	Long: `homeinfo asks for a US street address, sends it to a hosted language
model and prints an overview of the property.

With --detailed it issues three requests instead of one and prints the
overview, structured property details (size, rooms, estimated value, year
built) and up to three nearby schools.

Examples:
  homeinfo
  homeinfo --street "123 Main St" --city Springfield --state IL --zip 62704
  homeinfo --detailed --format json
  homeinfo -m anthropic:claude-3-5-haiku-latest`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHomeInfo(cmd.Context(), cmd)
	},
}

// GetRootCommand returns the root command with the version set. It is called
// from main.go.
func GetRootCommand(v string) *cobra.Command {
	rootCmd.Version = v
	return rootCmd
}

// InitConfig configures logging and loads .env, the config file and
// HOMEINFO_* overrides. cobra calls it before any command runs; a failure is
// reported by the command itself.
func InitConfig() {
	setupLogging(debugMode)
	config.SetDefaults(viper.GetViper())
	configErr = nil
	if err := config.Init(viper.GetViper(), configFile); err != nil {
		configErr = fmt.Errorf("failed to load configuration: %w", err)
	}
}

func setupLogging(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetPrefix("homeinfo")
	log.SetReportTimestamp(debug)
	if debug {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.WarnLevel)
}

func init() {
	cobra.OnInitialize(InitConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is .homeinfo.yml in the current or home directory)")
	flags.StringVarP(&modelFlag, "model", "m", config.DefaultModel, "model to use (format: provider:model)")
	flags.StringVar(&providerURL, "provider-url", "", "base URL for the provider API")
	flags.StringVar(&providerAPIKey, "provider-api-key", "", "API key for the provider (defaults to the provider's environment variable)")
	flags.BoolVar(&tlsSkipVerify, "tls-skip-verify", false, "skip TLS certificate verification (WARNING: insecure, use only for self-signed certificates)")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")

	// Model generation parameters
	flags.IntVar(&maxTokens, "max-tokens", 1024, "maximum number of tokens in each response")
	flags.Float32Var(&temperature, "temperature", 0.7, "controls randomness in responses (0.0-1.0)")
	flags.DurationVar(&timeout, "timeout", 0, "timeout for each request (0 uses the provider client default)")

	lookupFlags := rootCmd.Flags()
	lookupFlags.StringVar(&streetFlag, "street", "", "street address, e.g. \"123 Main St\"")
	lookupFlags.StringVar(&cityFlag, "city", "", "city")
	lookupFlags.StringVar(&stateFlag, "state", "", "two-letter state code")
	lookupFlags.StringVar(&zipFlag, "zip", "", "ZIP code (12345 or 12345-6789)")
	lookupFlags.BoolVar(&detailedFlag, "detailed", false, "request overview, property details and schools separately")
	lookupFlags.StringVarP(&formatFlag, "format", "f", config.FormatText, "output format: text, json or yaml")

	// Bind flags to viper for config file and HOMEINFO_* support
	for _, name := range []string{
		"model", "provider-url", "provider-api-key", "tls-skip-verify", "debug",
		"max-tokens", "temperature", "timeout",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	for _, name := range []string{"street", "city", "state", "zip", "detailed", "format"} {
		_ = viper.BindPFlag(name, lookupFlags.Lookup(name))
	}

	rootCmd.AddCommand(providersCmd)
}

func runHomeInfo(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	setupLogging(cfg.Debug)

	temp := cfg.Temperature
	completer, err := models.CreateCompleter(ctx, &models.ProviderConfig{
		ModelString:    cfg.Model,
		ProviderAPIKey: cfg.ProviderAPIKey,
		ProviderURL:    cfg.ProviderURL,
		MaxTokens:      cfg.MaxTokens,
		Temperature:    &temp,
		Timeout:        cfg.Timeout,
		TLSSkipVerify:  cfg.TLSSkipVerify,
		Logger:         log.Default(),
	})
	if err != nil {
		return err
	}

	// Keep stdout clean for machine-readable formats.
	var promptOut io.Writer = cmd.OutOrStdout()
	if cfg.Format != config.FormatText {
		promptOut = cmd.ErrOrStderr()
	}

	return app.New(app.Options{
		Completer: completer,
		Query: address.Query{
			Street: cfg.Street,
			City:   cfg.City,
			State:  cfg.State,
			Zip:    cfg.Zip,
		},
		Detailed:  cfg.Detailed,
		Format:    cfg.Format,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		PromptOut: promptOut,
		Status:    cmd.ErrOrStderr(),
		Logger:    log.Default(),
	}).Run(ctx)
}
