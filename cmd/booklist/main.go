// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the booklist CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbalk/booklist/internal/catalog"
	"github.com/kbalk/booklist/internal/config"
	"github.com/kbalk/booklist/internal/report"
	"github.com/kbalk/booklist/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the booklist CLI.
var rootCmd = &cobra.Command{
	Use:   "booklist config_file",
	Short: "Search a public library's catalog for this year's publications",
	Long: `booklist searches a public library's catalog website for this year's
publications from the authors listed in the given config file. Only libraries
running the CARL.X Integrated Library System are supported.

The config file is YAML and names the library's catalog URL, an optional
default media type (book is assumed otherwise), and the list of authors,
each with an optional per-author media type.`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.Flags().BoolP("debug", "d", false, "print debug information to stdout")
}

// initSettings wires optional HTTP tuning: a booklist.yaml settings file in
// the working directory or ~/.config/booklist, overridable via BOOKLIST_*
// environment variables. The author list always comes from the positional
// config file, not from here.
func initSettings() {
	viper.SetConfigName("booklist")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "booklist"))
	}

	viper.SetEnvPrefix("BOOKLIST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using settings file:", viper.ConfigFileUsed())
	}
}

// catalogSettings collects HTTP tuning from viper. Zero values let the
// catalog client fall back to its defaults.
func catalogSettings() types.CatalogConfig {
	return types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		HitsPerPage: viper.GetInt("hits_per_page"),
	}
}

func run(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if debug {
		fmt.Printf("config: %d authors, catalog %s\n", len(cfg.Authors), cfg.CatalogURL)
	}

	client, err := catalog.New(cfg.CatalogURL, catalogSettings())
	if err != nil {
		return err
	}
	if debug {
		client.Debug = os.Stdout
	}

	// Per-author errors are warnings so the remaining authors still get
	// searched; only a run where every search failed exits nonzero.
	failed := 0
	for _, author := range cfg.Authors {
		name := author.SearchName()
		fmt.Printf("%s -- %ss:\n", name, author.Media.FacetName)

		pubs, err := client.Search(cmd.Context(), name, author.Media)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: search for %s failed: %v\n", name, err)
			failed++
			continue
		}

		pubs = report.Filter(pubs, client.Year)
		pubs, removed := report.Collapse(pubs, author.Media)
		if removed > 0 && debug {
			fmt.Printf("collapsed %d duplicate entries for %s\n", removed, name)
		}
		report.Print(os.Stdout, pubs)
	}

	if failed > 0 && failed == len(cfg.Authors) {
		return fmt.Errorf("all %d author searches failed", failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
