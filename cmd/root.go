/*
Package cmd implements the command-line interface for the Memphora SDK.
It provides commands for storing, searching and managing memories, along
with account analytics and an interactive memory browser.
*/
package cmd

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/memphora"
)

/*
Embed a mini filesystem into the binary to hold the default config file.
This will be written to the home directory of the user running the CLI,
which allows a developer to easily override the config file.
*/
//go:embed cfg/*
var embedded embed.FS

/*
rootCmd represents the base command when called without any subcommands
*/
var (
	projectName = "memphora"
	cfgFile     string
	userIDFlag  string
	apiKeyFlag  string
	apiURLFlag  string
	verbose     bool

	rootCmd = &cobra.Command{
		Use:   "memphora",
		Short: "Command-line client for the Memphora memory platform",
		Long:  longRoot,
	}
)

/*
Execute is the main entry point for the Memphora CLI. It initializes the
root command and executes it.
*/
func Execute() error {
	return rootCmd.Execute()
}

/*
init is a function that initializes the root command and sets up the persistent flags.
*/
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yml",
		"config file (default is $HOME/."+projectName+"/config.yml)",
	)

	rootCmd.PersistentFlags().StringVar(
		&userIDFlag, "user-id", "", "user whose memories to operate on (default: $MEMPHORA_USER_ID)",
	)

	rootCmd.PersistentFlags().StringVar(
		&apiKeyFlag, "api-key", "", "Memphora API key (default: $MEMPHORA_API_KEY)",
	)

	rootCmd.PersistentFlags().StringVar(
		&apiURLFlag, "api-url", "", "base URL of the Memphora API (default: $MEMPHORA_API_URL)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)
}

/*
initConfig is a function that initializes the configuration for the Memphora CLI.
It writes the default config file to the user's home directory if it doesn't exist,
and then reads the config file from the user's home directory. A local .env file,
when present, is loaded before anything else so credentials can live next to the
project instead of the shell profile.
*/
func initConfig() {
	var err error

	// Missing .env is fine, shell environment still applies.
	_ = godotenv.Load()

	if err = writeConfig(); err != nil {
		log.Fatal(err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	// Add user config directory (~/.memphora)
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(home + "/." + projectName)

	if err = viper.ReadInConfig(); err != nil {
		log.Fatal(err)
		return
	}

	if verbose || viper.GetBool("output.verbose") {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
	}
}

/*
writeConfig is a function that writes the default config file to the user's home directory.
*/
func writeConfig() (err error) {
	var (
		home, _ = os.UserHomeDir()
		fh      fs.File
		buf     bytes.Buffer
	)

	configDir := home + "/." + projectName
	if !checkFileExists(configDir) {
		if err = os.MkdirAll(configDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	for _, file := range []string{cfgFile} {
		fullPath := configDir + "/" + file

		if checkFileExists(fullPath) {
			continue
		}

		if fh, err = embedded.Open("cfg/" + file); err != nil {
			return fmt.Errorf("failed to open embedded config file: %w", err)
		}

		if _, err = io.Copy(&buf, fh); err != nil {
			fh.Close()
			return fmt.Errorf("failed to read embedded config file: %w", err)
		}

		if err = os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			fh.Close()
			return fmt.Errorf("failed to write config file: %w", err)
		}

		log.Debug("wrote config file", "path", fullPath)
		buf.Reset()
		fh.Close()
	}

	return nil
}

func checkFileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !errors.Is(err, os.ErrNotExist)
}

/*
newSDK builds a Memphora client from the persistent flags, the environment
and the config file, in that order of precedence.
*/
func newSDK() (*memphora.Memphora, error) {
	opts := []memphora.Option{}

	if userIDFlag != "" {
		opts = append(opts, memphora.WithUserID(userIDFlag))
	}

	if apiKeyFlag != "" {
		opts = append(opts, memphora.WithAPIKey(apiKeyFlag))
	}

	switch {
	case apiURLFlag != "":
		opts = append(opts, memphora.WithAPIURL(apiURLFlag))
	case os.Getenv(memphora.EnvAPIURL) == "" && viper.GetString("memphora.api_url") != "":
		opts = append(opts, memphora.WithAPIURL(viper.GetString("memphora.api_url")))
	}

	if maxTokens := viper.GetInt("memphora.max_tokens"); maxTokens > 0 {
		opts = append(opts, memphora.WithMaxTokens(maxTokens))
	}

	opts = append(opts,
		memphora.WithAutoCompress(viper.GetBool("memphora.auto_compress")),
		memphora.WithCaching(viper.GetBool("memphora.cache")),
	)

	return memphora.New(opts...)
}

/*
longRoot contains the detailed help text for the root command.
*/
var longRoot = `
memphora is a command-line client for the Memphora memory platform.
It stores, searches and manages long-term memories for AI agents and users.

Credentials are resolved from flags, then MEMPHORA_USER_ID / MEMPHORA_API_KEY /
MEMPHORA_API_URL in the environment, then ~/.memphora/config.yml.
`
