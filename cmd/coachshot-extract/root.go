package main

import (
	"os"

	"github.com/2beens/coachshot/internal/logging"
	"github.com/2beens/coachshot/internal/vision"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	model    string
	endpoint string
	logLevel string
	apiKey   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "coachshot-extract",
		Short:         "Extract structured workouts from coaching app screenshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(logging.GetLevel(opts.logLevel))
			opts.apiKey = os.Getenv("GEMINI_API_KEY")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.model, "model", vision.DefaultModel, "Model used for extraction")
	rootCmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "Override the model API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level [trace | debug | info | warn | error]")

	rootCmd.AddCommand(newExtractCommand(opts))

	return rootCmd
}
