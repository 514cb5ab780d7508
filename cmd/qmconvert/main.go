// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the qmconvert CLI, which converts the
// system-documentation quality model between its Markdown, Excel, YAML, and
// CSV representations. Each conversion is a subcommand performing one batch
// pass: read the whole input, transform, write the whole output.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qmconvert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the qmconvert CLI.
var rootCmd = &cobra.Command{
	Use:   "qmconvert",
	Short: "Convert the documentation quality model between formats",
	Long: `qmconvert converts a structured quality-model document between four
representations: hand-authored Markdown, an Excel workbook, the canonical
YAML hierarchy, and a flattened CSV that emulates the workbook's merged
cells by blanking repeated label columns.

Each direction is a subcommand: md2xlsx, xlsx2yaml, yaml2csv, and csv2yaml.
All take an input path and an optional output path; when the output is
omitted it is derived from the input by swapping the extension.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./qmconvert.yaml or ~/.config/qmconvert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("qmconvert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "qmconvert"))
		}
	}

	viper.SetEnvPrefix("QMCONVERT")
	viper.AutomaticEnv()

	def := types.DefaultParserConfig()
	viper.SetDefault("parser.description_label", def.DescriptionLabel)
	viper.SetDefault("parser.example_label", def.ExampleLabel)
	viper.SetDefault("parser.violation_label", def.ViolationLabel)
	viper.SetDefault("parser.indent_width", def.IndentWidth)
	viper.SetDefault("sheet.name", types.DefaultModelSheet)
	viper.SetDefault("sheet.layout", string(types.LayoutHeaderRow1))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// parserConfig assembles the Markdown parser labels from viper.
func parserConfig() types.ParserConfig {
	return types.ParserConfig{
		DescriptionLabel: viper.GetString("parser.description_label"),
		ExampleLabel:     viper.GetString("parser.example_label"),
		ViolationLabel:   viper.GetString("parser.violation_label"),
		IndentWidth:      viper.GetInt("parser.indent_width"),
	}
}

// outputPath returns the second positional argument, or the input path with
// its extension swapped for ext when the output was omitted.
func outputPath(args []string, ext string) string {
	if len(args) > 1 {
		return args[1]
	}
	in := args[0]
	return in[:len(in)-len(filepath.Ext(in))] + ext
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
