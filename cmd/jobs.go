package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/intellects/aiready/internal/jobs"
	"github.com/intellects/aiready/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs <search text>",
	Short: "Search openings through the Intellects job feed",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		searchJobs(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().Bool("remote", false, "only show remote listings")
	jobsCmd.Flags().Bool("dump", false, "dump the raw listings to a temporary file")
}

func searchJobs(cmd *cobra.Command, query string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := jobs.New(ctx, logger)
	if config.Webhooks != nil && config.Webhooks.Jobs != "" {
		client.SearchURL = config.Webhooks.Jobs
	}
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	logger.Info("starting the search", zap.String("search", query))

	listings, err := client.Search(&jobs.SearchParams{Search: query})
	if err != nil {
		logger.Fatal("getting available jobs", zap.Error(err))
	}

	if cmd.Flag("remote").Value.String() == "true" {
		listings = listings.Remote()
	}

	logger.Info("getting jobs", zap.Int("count", listings.Len()))

	if listings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs found"))
		return
	}

	for _, listing := range listings.Items {
		location := listing.Location()
		if listing.IsRemote {
			location = strings.TrimSuffix("Remote / "+location, " / ")
		}
		fmt.Printf("%s — %s (%s)\n  %s\n", listing.Title, listing.EmployerName, location, listing.ApplyLink)
	}

	if cmd.Flag("dump").Value.String() == "true" {
		filename, err := listings.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dump results to file", zap.Error(err))
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
	}
}
