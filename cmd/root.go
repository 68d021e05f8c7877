// -- cmd/root.go --
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xkilldash9x/gcd-cli/internal/config"
	"github.com/xkilldash9x/gcd-cli/internal/euclid"
	"github.com/xkilldash9x/gcd-cli/internal/observability"
	"github.com/xkilldash9x/gcd-cli/internal/operands"
	"go.uber.org/zap"
)

// usageLine is what an empty invocation prints to stderr before exiting
// non-zero. Kept as a bare line rather than cobra's full help output.
const usageLine = "Usage: gcd NUMBER ..."

// errUsage marks the empty-argument case so Execute can print the usage line
// instead of an error message.
var errUsage = errors.New("no numbers supplied")

// result is the JSON shape emitted when output.format is "json".
type result struct {
	Numbers []uint64 `json:"numbers"`
	GCD     uint64   `json:"gcd"`
}

// newRootCmd builds the root command. Tests construct pristine instances
// through this; production uses the package-level rootCmd below.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "gcd NUMBER ...",
		Short: "Computes the greatest common divisor of its integer arguments.",
		Args:  cobra.ArbitraryArgs,
		// Version is dynamically set at build time. See cmd/version.go.
		Version: Version,
		// Errors and usage are rendered by Execute so the program controls
		// exactly what lands on stderr.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// This function runs before the command, setting up config and logging.
			if err := initializeConfig(cfgFile); err != nil {
				return err
			}
			if err := viper.BindPFlag("output.format", cmd.Flags().Lookup("format")); err != nil {
				return err
			}
			if err := viper.BindPFlag("logger.level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				// Initialize a fallback logger so the failure itself is reportable.
				observability.InitializeLogger(config.LoggerConfig{Level: "warn", Format: "console", ServiceName: "gcd"})
				return err
			}

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Info("Starting gcd", zap.String("version", Version))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			if len(args) == 0 {
				return errUsage
			}

			numbers, err := operands.Parse(args)
			if err != nil {
				return err
			}

			d := euclid.Reduce(numbers)
			logger.Debug("Reduced number list",
				zap.Uint64s("numbers", numbers),
				zap.Uint64("gcd", d),
			)

			switch viper.GetString("output.format") {
			case config.FormatJSON:
				out, err := json.Marshal(result{Numbers: numbers, GCD: d})
				if err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "The greatest common divisor of %s is %d\n", operands.Format(numbers), d)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./gcd.yaml)")
	cmd.Flags().StringP("format", "f", "", "Output format for the result ('text' or 'json'). (Overrides config/env)")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error). (Overrides config/env)")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	return cmd
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// Execute runs the root command and maps failures onto the process exit
// contract: the usage line for an empty invocation, a prefixed error message
// for everything else, exit status 1 either way.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageLine)
		} else {
			fmt.Fprintf(os.Stderr, "gcd: %v\n", err)
		}
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("gcd")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("GCD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars.
	}
	return nil
}
