package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inonetecx/concierge/internal/config"
	"github.com/inonetecx/concierge/internal/knowledge"
)

// --- kb ---

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the company knowledge base",
}

var kbShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active knowledge base as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		kb, err := knowledge.Load(cfg.Knowledge.Path)
		if err != nil {
			return fmt.Errorf("loading knowledge base: %w", err)
		}
		if err := kb.Validate(); err != nil {
			return fmt.Errorf("invalid knowledge base: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(kb)
	},
}

var kbServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the offered services",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		kb, err := knowledge.Load(cfg.Knowledge.Path)
		if err != nil {
			return fmt.Errorf("loading knowledge base: %w", err)
		}

		for _, svc := range kb.Services {
			fmt.Printf("%s  %s\n", colorize(colorCyan, svc.Key), svc.Name)
			if price, ok := kb.PricingFor(svc.Key); ok {
				printStatus("Starting at", "%s%d", price.Currency, price.Start)
			}
		}
		return nil
	},
}

func init() {
	kbCmd.AddCommand(kbShowCmd)
	kbCmd.AddCommand(kbServicesCmd)
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable configuration keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range config.ValidKeys() {
			fmt.Println(k)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
}
