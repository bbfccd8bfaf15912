package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devon-mar/linkhdr/inspector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigFile = ".linkhdr.yml"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkhdr",
	Short: "Parse HTTP Link headers.",
}

var (
	cfgFile  string
	logLevel string
	format   string
	config   *inspector.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format (yaml or json), overrides the config")
	cobra.OnInitialize(initLogging, initConfig)
}

func initLogging() {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level.")
	}
	log.SetLevel(lvl)
}

func initConfig() {
	var err error
	// The default config file is optional.
	config, err = inspector.ReadConfig(cfgFile, !rootCmd.PersistentFlags().Changed("config"))
	if err != nil {
		log.WithError(err).Fatal("Error loading config.")
	}
	if format != "" {
		config.Format = format
	}
}

// Returns args or, if empty, every non-blank line of r.
func readHeaders(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var ret []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			ret = append(ret, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("error reading headers: %w", err)
	}
	return ret, nil
}
