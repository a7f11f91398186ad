package cmd

import (
	"fmt"
	"os"

	"github.com/sensepost/wiiload/lib"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version
	Version string

	// options are CLI options
	options = lib.NewOptions()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wiiload",
	Short: "Send homebrew to the Homebrew Channel",
	Long: `Send homebrew to the Homebrew Channel.
    Version: ` + Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {

		// Setup the logger to use
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "02 Jan 2006 15:04:05"})
		if options.Debug {
			log.Logger = log.Logger.Level(zerolog.DebugLevel)
			log.Logger = log.With().Caller().Logger()
			log.Debug().Msg("debug logging enabled")
		} else {
			log.Logger = log.Logger.Level(zerolog.InfoLevel)
		}
		if options.DisableLogging {
			log.Logger = log.Logger.Level(zerolog.Disabled)
		}

		options.Logger = &log.Logger
	},
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {

		// by default, treat a bare path as a send
		if len(args) == 0 {
			cmd.Help()
			os.Exit(1)
		}
		sendCmd.Run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {

	// logging
	rootCmd.PersistentFlags().BoolVar(&options.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&options.DisableLogging, "disable-logging", false, "disable all logging")

	// target configuration
	rootCmd.PersistentFlags().StringVarP(&options.Endpoint, "endpoint", "e", "", "Target endpoint. (ie: tcp:192.168.1.106) Falls back to $"+lib.EndpointEnvVar+" and the config file")
	rootCmd.PersistentFlags().StringVarP(&options.ConfigPath, "config", "c", "", "Config file to read the endpoint from. (default: ~/"+lib.DefaultConfigFile+")")
}
