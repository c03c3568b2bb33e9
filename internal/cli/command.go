package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/flipdeck/internal"
	"codeberg.org/snonux/flipdeck/internal/anki"
	"codeberg.org/snonux/flipdeck/internal/deck"
)

// Viper keys
const (
	KeyDeckFile = "deck.file"
	KeyDeckName = "export.deck_name"
	KeyLogLevel = "log.level"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flipdeck",
		Short: "Desktop flashcard study tool",
		Long: `flipdeck shows question/answer flashcards, flips between the two
sides and lets you add, edit and delete cards. The deck is kept in
flashcards.json in the working directory.

Examples:
  flipdeck                              # Launch the study window (default)
  flipdeck --deck ~/cards/bulgarian.json
  flipdeck --import words.txt           # Append "question = answer" lines
  flipdeck --export deck.apkg           # Export for Anki
  flipdeck --archive                    # Move the deck aside and start fresh`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.flipdeck.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVarP(&flags.DeckFile, "deck", "d", flags.DeckFile, "Deck file")
	cmd.Flags().StringVar(&flags.ImportFile, "import", "", "Append cards from a text file (one 'question = answer' per line)")
	cmd.Flags().StringVar(&flags.ExportPath, "export", "", "Export the deck for Anki to this path (APKG by default)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Export CSV instead of APKG when using --export")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the deck file to archive/ and exit")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(KeyDeckFile, cmd.Flags().Lookup("deck"))
	viper.BindPFlag(KeyDeckName, cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag(KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file in the working directory is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".flipdeck" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".flipdeck")
	}

	// FLIPDECK_DECK_FILE maps to deck.file
	viper.SetEnvPrefix("FLIPDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetDeckFile returns the configured deck file, falling back to the default name
func GetDeckFile() string {
	if file := viper.GetString(KeyDeckFile); file != "" {
		return file
	}
	return deck.DefaultFileName
}

// GetDeckName returns the configured export deck name
func GetDeckName() string {
	if name := viper.GetString(KeyDeckName); name != "" {
		return name
	}
	return anki.DefaultDeckName
}

// GetLogLevel returns the configured log level name
func GetLogLevel() string {
	return viper.GetString(KeyLogLevel)
}
