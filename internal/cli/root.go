package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pratik-mahalle/recommendations/pkg/client"
)

var (
	cfgFile      string
	outputFormat string
	serverURL    string
	apiClient    *client.Client
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recsvc",
		Short: "recsvc - command-line client for the Recommendation API",
		Long: `recsvc talks to a running Recommendation API server. It can create,
update, like and delete product recommendations and list them with filters.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(getOutputFormat()); err != nil {
				return err
			}
			// Config commands work without a server
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}
			return initClient()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.recsvc/config.yaml)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, yaml")
	cmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (overrides config)")

	_ = viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("server_url", cmd.PersistentFlags().Lookup("server"))

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newRecommendationCmd())

	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}

// Exit codes returned by the recsvc binary
const (
	ExitOK         = 0
	ExitError      = 1
	ExitNotFound   = 2
	ExitBadRequest = 3
	ExitServer     = 4
)

// ExitCode maps an Execute error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return ExitError
	}
	switch {
	case apiErr.IsNotFound():
		return ExitNotFound
	case apiErr.IsValidationError():
		return ExitBadRequest
	case apiErr.IsServerError():
		return ExitServer
	}
	return ExitError
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RECSVC")
	viper.AutomaticEnv()

	viper.SetDefault("server_url", "http://localhost:8080")
	viper.SetDefault("output", "table")
	viper.SetDefault("timeout", "30s")

	_ = viper.ReadInConfig()
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".recsvc"), nil
}

// configPath is where config commands write: --config if given, else the
// default file under the user's home directory.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func initClient() error {
	url := viper.GetString("server_url")
	if serverURL != "" {
		url = serverURL
	}
	if url == "" {
		return fmt.Errorf("no server configured. Run 'recsvc config set server_url <url>' or pass --server")
	}

	apiClient = client.NewClient(client.Config{
		BaseURL:   url,
		UserAgent: "recsvc",
		Timeout:   viper.GetDuration("timeout"),
	})
	return nil
}

func getOutputFormat() string {
	if outputFormat != "" && outputFormat != "table" {
		return outputFormat
	}
	return viper.GetString("output")
}

func validateOutputFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
