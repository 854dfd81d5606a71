package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/coachshot/internal/extraction"
	"github.com/2beens/coachshot/internal/imaging"
	"github.com/2beens/coachshot/internal/uploads"
	"github.com/2beens/coachshot/internal/vision"
	"github.com/2beens/coachshot/pkg"

	"github.com/spf13/cobra"
)

var errAPIKeyMissing = errors.New("model api key not set, use GEMINI_API_KEY env var to set it")

type extractOptions struct {
	merge    bool
	asJSON   bool
	date     string
	interval time.Duration
}

func newExtractCommand(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <screenshot>...",
		Short: "Run screenshots through the model and print the extracted workouts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readFiles(args)
			if err != nil {
				return err
			}

			client, err := vision.NewClient(cmd.Context(), vision.NewClientParams{
				APIKey:   root.apiKey,
				Model:    root.model,
				Endpoint: root.endpoint,
			})
			if err != nil {
				return fmt.Errorf("new model client: %w", err)
			}
			if !client.Configured() {
				return errAPIKeyMissing
			}

			// no quota offline; the extractor skips the gate when it is nil
			extractor := extraction.NewExtractor(extraction.NewExtractorParams{
				Model: client,
			})
			return runExtract(cmd, extractor, files, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.merge, "merge", false, "Merge all screenshots into one workout")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the workouts as JSON")
	cmd.Flags().StringVar(&opts.date, "date", "", "Workout date (YYYY-MM-DD), overrides the date read from the screenshots")
	cmd.Flags().DurationVar(&opts.interval, "interval", uploads.DefaultInterFileDelay, "Wait between screenshots")

	return cmd
}

type workoutExtractor interface {
	Extract(ctx context.Context, userID string, img *imaging.Image) (*extraction.Result, error)
	ModelName() string
}

func runExtract(cmd *cobra.Command, extractor workoutExtractor, files []uploads.File, opts *extractOptions) error {
	service := uploads.NewService(uploads.NewServiceParams{
		Extractor:      extractor,
		Screenshots:    &localScreenshots{},
		Workouts:       &memoryWorkouts{},
		InterFileDelay: opts.interval,
	})

	res, err := service.Upload(cmd.Context(), "", uploads.Request{
		Files: files,
		Date:  opts.date,
		Merge: opts.merge,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.File, f.Message)
	}
	if len(res.Workouts) == 0 {
		return fmt.Errorf("no workouts extracted: %w", res.Err())
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, w := range res.Workouts {
		fmt.Fprintln(cmd.OutOrStdout(), renderWorkout(w))
	}
	return nil
}

func readFiles(paths []string) ([]uploads.File, error) {
	files := make([]uploads.File, 0, len(paths))
	for _, p := range paths {
		exists, err := pkg.PathExists(p, false)
		if err != nil {
			return nil, fmt.Errorf("check screenshot: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("screenshot not found: %s", p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read screenshot: %w", err)
		}
		files = append(files, uploads.File{
			Name: filepath.Base(p),
			Data: data,
		})
	}
	return files, nil
}
