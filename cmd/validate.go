package cmd

import (
	"github.com/devon-mar/linkhdr/inspector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runValidate())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() int {
	if err := inspector.ValidateConfig(config); err != nil {
		log.WithError(err).Error("Invalid config")
		return 1
	}
	log.WithField("resolver", config.Resolver.Type).Info("Config is valid.")
	return 0
}
