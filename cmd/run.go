package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/assistant/internal/engine"
	"github.com/talentscout/assistant/internal/logger"
	"github.com/talentscout/assistant/internal/questions"
	"github.com/talentscout/assistant/internal/questions/gemini"
	"github.com/talentscout/assistant/internal/secrets"
	"github.com/talentscout/assistant/internal/store"
)

const (
	providerBank   = "bank"
	providerGemini = "gemini"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive screening session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("provider", "", "question provider to use (bank or gemini), overrides the config")
}

// run drives one interactive screening session on the terminal.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talentscout assistant", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	candidateStore, err := store.New(config.Storage.Dir, config.Storage.File, logger)
	if err != nil {
		logger.Fatal("opening the candidate store", zap.Error(err))
	}

	logger.Debug("candidate store ready", zap.String("path", candidateStore.Path()))

	generator, err := newQuestionGenerator(ctx, cmd, config.Questions, logger)
	if err != nil {
		logger.Fatal("building the question generator", zap.Error(err))
	}

	session := engine.New(ctx, candidateStore, generator, logger)

	logger.Info("session started", zap.String("session_id", session.SessionID()))

	// The very first turn is empty by contract and yields the welcome.
	reply, ended := session.ProcessTurn("")
	printReply(reply)

	prompt := promptui.Prompt{
		Label:     "You",
		AllowEdit: true,
	}

	for !ended {
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				logger.Info("session interrupted", zap.String("stage", session.Stage().String()))
				return
			}
			logger.Fatal("reading candidate input", zap.Error(err))
		}

		reply, ended = session.ProcessTurn(input)
		printReply(reply)
	}

	summary := session.Summarize()
	logger.Info("session finished",
		zap.String("stage", summary.Stage),
		zap.Int("questions_asked", summary.QuestionsAsked),
		zap.Int("questions_answered", summary.QuestionsAnswered),
		zap.Int("turns", summary.Turns),
	)
}

func printReply(reply string) {
	fmt.Printf("\nAssistant: %s\n\n", reply)
}

// newQuestionGenerator builds the configured question provider. The bank
// provider is the default and needs no credentials.
func newQuestionGenerator(ctx context.Context, cmd *cobra.Command, cfg *QuestionsConfig, log *zap.Logger) (questions.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if cmd != nil {
		if flag := cmd.Flag("provider"); flag != nil && flag.Value.String() != "" {
			provider = strings.TrimSpace(strings.ToLower(flag.Value.String()))
		}
	}

	switch provider {
	case "", providerBank:
		return questions.NewBank(cfg.Max), nil
	case providerGemini:
	default:
		return nil, fmt.Errorf("unsupported question provider: %s", provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	keyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("questions.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set questions.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	client, err := gemini.NewClient(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	genLogger := logger.WithProvider(log, providerGemini, client.Model())

	return gemini.NewGenerator(client, genLogger, cfg.Max, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength), nil
}
