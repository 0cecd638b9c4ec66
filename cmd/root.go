// Package cmd implements the command-line interface for freetint.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/freetint-cli/freetint/apply"
	"github.com/freetint-cli/freetint/color"
	"github.com/freetint-cli/freetint/constant"
	"github.com/freetint-cli/freetint/icon"
	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/log"
	"github.com/freetint-cli/freetint/scheme"
	"github.com/freetint-cli/freetint/style"
	"github.com/freetint-cli/freetint/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("remote", false, "Fetch scales from the remote tint service instead of generating locally")
	lo.Must0(viper.BindPFlag(key.RemoteEnabled, rootCmd.PersistentFlags().Lookup("remote")))

	rootCmd.Flags().StringArrayP("color", "c", nil, "Color to apply as name:value[:stop], repeatable")
	rootCmd.Flags().StringP("scheme", "s", "", "Path of the scheme file holding the colors to apply")
	rootCmd.MarkFlagsMutuallyExclusive("color", "scheme")

	rootCmd.Flags().StringP("group", "g", "", "Name prefix marking the palette entries the tool owns")
	lo.Must0(viper.BindPFlag(key.PalettePrefix, rootCmd.Flags().Lookup("group")))

	rootCmd.Flags().Bool("backup", false, "Keep a backup copy of the document next to the original")
	lo.Must0(viper.BindPFlag(key.DocumentBackup, rootCmd.Flags().Lookup("backup")))

	rootCmd.Flags().Bool("replace", false, "Rebuild matched groups with fresh identities instead of updating in place")
	rootCmd.Flags().Bool("dry-run", false, "Run the whole pipeline but leave the document untouched")
	rootCmd.Flags().BoolP("json", "j", false, "Format the summary as a JSON string")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the freetint application.
var rootCmd = &cobra.Command{
	Use:   constant.Freetint + " <document>",
	Short: "A command-line palette manager for Lunacy documents",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - A command-line palette manager for Lunacy documents"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		colors, err := requestedColors(cmd)
		handleErr(err)

		result, err := apply.Run(&apply.Options{
			Path:    args[0],
			Colors:  colors,
			Replace: lo.Must(cmd.Flags().GetBool("replace")),
			DryRun:  lo.Must(cmd.Flags().GetBool("dry-run")),
		})
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(os.Stdout).Encode(result))
			return
		}

		printSummary(result)
	},
}

// requestedColors assembles the color requests of this invocation from the
// scheme file or the repeated color flags, whichever was used.
func requestedColors(cmd *cobra.Command) ([]scheme.Color, error) {
	if path := lo.Must(cmd.Flags().GetString("scheme")); path != "" {
		s, err := scheme.Load(path)
		if err != nil {
			return nil, err
		}

		return s.Colors, nil
	}

	raws := lo.Must(cmd.Flags().GetStringArray("color"))
	if len(raws) == 0 {
		return nil, errors.New("no colors requested, pass --color or --scheme")
	}

	colors := make([]scheme.Color, 0, len(raws))
	for _, raw := range raws {
		c, err := apply.ParseColor(raw)
		if err != nil {
			return nil, err
		}

		colors = append(colors, c)
	}

	return colors, nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
