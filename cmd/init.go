package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/freetint-cli/freetint/apply"
	"github.com/freetint-cli/freetint/constant"
	"github.com/freetint-cli/freetint/filesystem"
	"github.com/freetint-cli/freetint/hsl"
	"github.com/freetint-cli/freetint/icon"
	"github.com/freetint-cli/freetint/style"
	"github.com/freetint-cli/freetint/tint"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("output", "o", constant.Freetint+".toml", "Path of the scheme file to write")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite the scheme file if it already exists")
}

// initCmd interactively scaffolds a color scheme file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively scaffold a color scheme file",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			output = lo.Must(cmd.Flags().GetString("output"))
			force  = lo.Must(cmd.Flags().GetBool("force"))
		)

		if !force && lo.Must(afero.Exists(filesystem.API(), output)) {
			handleErr(fmt.Errorf("%s already exists, pass --force to overwrite", output))
		}

		var colors []map[string]any
		for {
			c, err := askColor()
			handleErr(err)
			colors = append(colors, c)

			var more bool
			confirm := survey.Confirm{
				Message: "Add another color?",
				Default: false,
			}
			handleErr(survey.AskOne(&confirm, &more))

			if !more {
				break
			}
		}

		v := viper.New()
		v.SetFs(filesystem.API())
		v.SetConfigFile(output)
		v.Set("colors", colors)
		handleErr(v.WriteConfig())

		fmt.Printf("%s wrote %s\n", icon.Get(icon.Success), style.Bold(output))
	},
}

// askColor prompts for a single color entry of the scheme.
func askColor() (map[string]any, error) {
	var name string
	prompt := survey.Input{
		Message: "Group name:",
		Default: "brand",
	}
	if err := survey.AskOne(&prompt, &name, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	var value string
	prompt = survey.Input{
		Message: "Seed color or group to link:",
		Help:    "A #RRGGBB seed generates a scale, any other value links an existing group",
	}
	if err := survey.AskOne(&prompt, &value, survey.WithValidator(seedOrLink)); err != nil {
		return nil, err
	}

	color := map[string]any{
		"name":  name,
		"value": apply.NormalizeSeed(value),
	}

	var stop string
	choice := survey.Select{
		Message: "Anchor stop:",
		Options: lo.Map(tint.Stops, func(s tint.Stop, _ int) string { return s.String() }),
		Default: tint.DefaultAnchor.String(),
	}
	if err := survey.AskOne(&choice, &stop); err != nil {
		return nil, err
	}

	if stop != tint.DefaultAnchor.String() {
		color["stop"] = lo.Must(strconv.Atoi(stop))
	}

	return color, nil
}

// seedOrLink accepts a parseable seed color in either hex form and lets any
// other value through as a link target, to be resolved against the document.
func seedOrLink(answer any) error {
	value, ok := answer.(string)
	if !ok || value == "" {
		return fmt.Errorf("a value is required")
	}

	value = apply.NormalizeSeed(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}

	_, err := hsl.Parse(value)
	return err
}
