package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/L0weN/ArmorCrush/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Prints the built-in default configuration as YAML. Save it as
~/.armorcrush/configs/armorcrush.yaml or ./configs/armorcrush.yaml to
customize the board, then edit what you need.

With --effective the loaded configuration is printed instead, after
--config and --difficulty are applied.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(appCfg); err != nil {
		return err
	}
	return enc.Close()
}
