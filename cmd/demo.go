package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/assistant/internal/engine"
	"github.com/talentscout/assistant/internal/logger"
	"github.com/talentscout/assistant/internal/questions"
	"github.com/talentscout/assistant/internal/store"
)

// demoInputs replays a complete screening conversation.
var demoInputs = []string{
	"", // begin conversation
	"John Smith",
	"john.smith@email.com",
	"+1-555-123-4567",
	"5",
	"Full Stack Developer",
	"San Francisco, CA",
	"Python, Django, React, JavaScript, PostgreSQL, Docker",
	"Django follows the MVT pattern where Model handles data, View processes requests and Template handles presentation.",
	"I use the Django ORM with select_related and prefetch_related for query optimization, plus caching with Redis.",
	"I use React hooks like useState for local state and useEffect for side effects; for complex state I reach for useReducer.",
	"No further questions, goodbye!",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a scripted screening conversation against a throwaway store",
	Run: func(_ *cobra.Command, _ []string) {
		demo()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func demo() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	dir, err := os.MkdirTemp("", "talentscout-demo-*")
	if err != nil {
		logger.Fatal("creating demo data directory", zap.Error(err))
	}
	defer os.RemoveAll(dir)

	demoStore, err := store.New(dir, "", logger)
	if err != nil {
		logger.Fatal("opening the demo store", zap.Error(err))
	}

	session := engine.New(ctx, demoStore, questions.NewBank(0), logger)

	for turn, input := range demoInputs {
		if turn > 0 {
			fmt.Printf("You: %s\n", input)
		}

		reply, ended := session.ProcessTurn(input)
		printReply(reply)

		if ended {
			break
		}
	}

	summary := session.Summarize()
	logger.Info("demo finished",
		zap.String("stage", summary.Stage),
		zap.Int("questions_asked", summary.QuestionsAsked),
		zap.Int("questions_answered", summary.QuestionsAnswered),
		zap.Int("stored_candidates", demoStore.LoadAll().Len()),
	)
}
