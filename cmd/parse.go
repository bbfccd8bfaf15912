package cmd

import (
	"io"

	"github.com/devon-mar/linkhdr/inspector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [HEADER...]",
	Short: "Parse Link header values.",
	Long: `Parse Link header values.

If no header is given, each non-blank line of stdin is parsed as a header.`,
	Run: func(cmd *cobra.Command, args []string) {
		hdrs, err := readHeaders(args, cmd.InOrStdin())
		if err != nil {
			log.WithError(err).Fatal("Error reading headers")
		}
		exit(runParse(hdrs, cmd.OutOrStdout()))
	},
}
var requireRel *bool

func init() {
	rootCmd.AddCommand(parseCmd)
	requireRel = parseCmd.Flags().Bool("require-rel", false, "Fail on links without a rel parameter")
}

func runParse(hdrs []string, w io.Writer) int {
	if *requireRel {
		config.RequireRel = true
	}
	i, err := inspector.NewInspector(config)
	if err != nil {
		log.WithError(err).Fatal("Error initializing inspector")
	}

	var ret int
	reports := make([]*inspector.Report, 0, len(hdrs))
	for _, h := range hdrs {
		logger := log.WithField("header", h)
		r, err := i.Inspect(h, logger)
		if err != nil {
			logger.WithError(err).Error("Error parsing header")
			ret++
			continue
		}
		reports = append(reports, r)
	}

	if err := inspector.Render(w, config.Format, reports); err != nil {
		log.WithError(err).Error("Error writing output")
		ret++
	}
	return ret
}
