package cmd

import (
	"io"

	"github.com/devon-mar/linkhdr/inspector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next [HEADER...]",
	Short: "Print the next page of Link header values.",
	Run: func(cmd *cobra.Command, args []string) {
		hdrs, err := readHeaders(args, cmd.InOrStdin())
		if err != nil {
			log.WithError(err).Fatal("Error reading headers")
		}
		exit(runNext(hdrs, cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(hdrs []string, w io.Writer) int {
	i, err := inspector.NewInspector(config)
	if err != nil {
		log.WithError(err).Fatal("Error initializing inspector")
	}

	var ret int
	infos := make([]*inspector.NextInfo, 0, len(hdrs))
	for _, h := range hdrs {
		logger := log.WithField("header", h)
		n, err := i.Next(h, logger)
		if err != nil {
			logger.WithError(err).Error("Error parsing header")
			ret++
			continue
		}
		infos = append(infos, n)
	}

	if err := inspector.Render(w, config.Format, infos); err != nil {
		log.WithError(err).Error("Error writing output")
		ret++
	}
	return ret
}
