package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "talentscout"
)

// Config is the application configuration, unmarshalled from the optional
// talentscout.yaml file. Every section has working defaults, so the tool runs
// with no config at all.
type Config struct {
	Storage   *StorageConfig   `mapstructure:"storage"`
	Questions *QuestionsConfig `mapstructure:"questions"`
}

// StorageConfig locates the candidates collection file.
type StorageConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

// QuestionsConfig selects and tunes the technical question provider.
type QuestionsConfig struct {
	Provider string        `mapstructure:"provider"`
	Max      int           `mapstructure:"max"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig configures the Gemini question provider.
type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is a cli hiring assistant that screens candidates through a scripted technical interview",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("questions.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Local development convenience, a missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	if err := viper.ReadInConfig(); err != nil {
		// The tool works with defaults; only a malformed file is fatal.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Storage == nil {
		config.Storage = &StorageConfig{}
	}
	if config.Questions == nil {
		config.Questions = &QuestionsConfig{}
	}

	return config, nil
}
