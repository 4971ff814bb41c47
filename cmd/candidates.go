package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/assistant/internal/candidate"
	"github.com/talentscout/assistant/internal/logger"
	"github.com/talentscout/assistant/internal/store"
)

const promptExit = "exit"

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Review stored candidate records (anonymized by default)",
	Run: func(cmd *cobra.Command, _ []string) {
		candidates(cmd)
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().Bool("raw", false, "show records without anonymization")
	candidatesCmd.Flags().Bool("all", false, "dump all records non-interactively")
}

func candidates(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	candidateStore, err := store.New(config.Storage.Dir, config.Storage.File, logger)
	if err != nil {
		logger.Fatal("opening the candidate store", zap.Error(err))
	}

	collection := candidateStore.LoadAll()
	if collection.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no stored candidates"))
		return
	}

	raw := cmd.Flag("raw").Value.String() == "true"

	logger.Info("loaded candidate records",
		zap.Int("count", collection.Len()),
		zap.Bool("anonymized", !raw),
	)

	if cmd.Flag("all").Value.String() == "true" {
		for _, stored := range collection.Items {
			printStored(stored, raw)
		}
		return
	}

	for {
		items := make([]string, 0, collection.Len()+1)
		for _, stored := range collection.Items {
			display := stored
			if !raw {
				display = store.AnonymizeStored(stored)
			}
			items = append(items, fmt.Sprintf("%s %s / %s / %s",
				display.ID, display.FullName, display.Email, display.Timestamp,
			))
		}

		picker := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: append(items, promptExit),
		}

		_, selected, err := picker.Run()
		if err != nil {
			logger.Info("exiting", zap.Error(err))
			return
		}

		if selected == promptExit {
			return
		}

		id := strings.Split(selected, " ")[0]
		stored := collection.FindByID(id)
		if stored == nil {
			logger.Warn("candidate not found", zap.String("candidate_id", id))
			continue
		}

		printStored(stored, raw)
	}
}

func printStored(stored *candidate.Stored, raw bool) {
	display := stored
	if !raw {
		display = store.AnonymizeStored(stored)
	}

	pretty, _ := json.MarshalIndent(display, "", "  ")
	fmt.Println(string(pretty))
}
