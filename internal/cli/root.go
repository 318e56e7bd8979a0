package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "duilens",
	Short: "DuiLens - corpus-backed classification of Chinese 对-constructions",
	Long: `DuiLens analyzes Chinese sentences built around the preposition 对 and
classifies each into one of six construction categories:

  DA    Directed-Action       action directed TO someone
  SI    Scoped-Intervention   intervention ON a scope or domain
  MS    Mental-State          internal state triggered by the target
  ABT   Aboutness             discourse or commentary ABOUT the target
  EVAL  Evaluation            good/bad/useful FOR the target
  DISP  Disposition           behavioural manner TOWARD someone

Classification is deterministic: a small override table and BCC corpus
statistics decide the category. The optional LLM tutor only explains a
finished analysis and never changes it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	// A .env file (if present) supplies provider API keys
	_ = godotenv.Load()

	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for DuiLens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("duilens v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.duilens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.duilens")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DUILENS_*
	viper.SetEnvPrefix("DUILENS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
