package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/color"
	"github.com/ytgrab/ytgrab/config"
	"github.com/ytgrab/ytgrab/filesystem"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/style"
)

// lookupField resolves k in the registry, suggesting the closest key on a miss.
func lookupField(k string) (config.Field, error) {
	if field, ok := config.Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return config.Field{}, fmt.Errorf(
		"%w %s, did you mean %s?",
		config.ErrUnknownKey,
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// saveConfig writes every current setting to the config file, creating it if needed.
func saveConfig() error {
	return viper.WriteConfigAs(config.File())
}

func printDone(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings such as the download directory or the yt-dlp path",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Limit the output to these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configInfoCmd = &cobra.Command{
	Use:          "info",
	Short:        "Describe configuration fields with their current and default values",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			out    = cmd.OutOrStdout()
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				field, err := lookupField(k)
				if err != nil {
					return err
				}
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			return json.NewEncoder(out).Encode(lo.ToSlicePtr(fields))
		}

		for i := range fields {
			if i > 0 {
				fmt.Fprint(out, "\n\n")
			}
			fmt.Fprint(out, fields[i].Pretty())
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Store a value in the config file",
	Example:           "  ytgrab config set download.dir ~/Videos\n  ytgrab config set ytdlp.auto_install false",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		k := args[0]
		if _, err := lookupField(k); err != nil {
			return err
		}

		v, err := config.Parse(k, args[1])
		if err != nil {
			return err
		}

		viper.Set(k, v)
		if err := saveConfig(); err != nil {
			return err
		}

		printDone(cmd.OutOrStdout(), "set %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(v)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the effective value of a key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := lookupField(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), viper.Get(args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:          "write",
	Short:        "Write the effective configuration to the config file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.File()

		exists, err := filesystem.API().Exists(path)
		if err != nil {
			return err
		}
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			return fmt.Errorf("%s already exists, use --force to overwrite it", path)
		}

		if err := saveConfig(); err != nil {
			return err
		}

		printDone(cmd.OutOrStdout(), "wrote config to %s", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:          "delete",
	Short:        "Remove the config file",
	Aliases:      []string{"remove"},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := filesystem.API().Remove(config.File()); err != nil {
			return err
		}

		printDone(cmd.OutOrStdout(), "deleted config")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:          "reset",
	Short:        "Restore one key or all keys to their defaults",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			k   = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		if !all && k == "" {
			return errors.New("either --key or --all must be set")
		}

		fields := lo.Values(config.Default)
		if !all {
			field, err := lookupField(k)
			if err != nil {
				return err
			}
			fields = []config.Field{field}
		}

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		if err := saveConfig(); err != nil {
			return err
		}

		if all {
			printDone(cmd.OutOrStdout(), "reset all config values")
		} else {
			printDone(cmd.OutOrStdout(), "reset %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(fields[0].Value)))
		}
		return nil
	},
}
