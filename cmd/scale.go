package cmd

import (
	"encoding/json"
	"os"

	"github.com/freetint-cli/freetint/apply"
	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/tint"
	"github.com/freetint-cli/freetint/tintsdev"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(scaleCmd)

	scaleCmd.Flags().StringP("name", "n", "preview", "Group name to label the generated tints with")

	scaleCmd.Flags().IntP("anchor", "a", 0, "Stop that reproduces the seed color exactly")
	lo.Must0(viper.BindPFlag(key.ScaleAnchor, scaleCmd.Flags().Lookup("anchor")))

	scaleCmd.Flags().Int("min", 0, "Lightness floor of the scale in percent")
	lo.Must0(viper.BindPFlag(key.ScaleLightnessMin, scaleCmd.Flags().Lookup("min")))

	scaleCmd.Flags().Int("max", 0, "Lightness ceiling of the scale in percent")
	lo.Must0(viper.BindPFlag(key.ScaleLightnessMax, scaleCmd.Flags().Lookup("max")))

	scaleCmd.Flags().BoolP("json", "j", false, "Format the scale as a JSON string")

	scaleCmd.SetOut(os.Stdout)
}

// scaleCmd previews the tonal scale a seed color produces without touching
// any document.
var scaleCmd = &cobra.Command{
	Use:   "scale <seed>",
	Short: "Preview the tonal scale generated from a seed color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name  = lo.Must(cmd.Flags().GetString("name"))
			value = apply.NormalizeSeed(args[0])
		)

		request := tint.Request{
			Name:         name,
			Value:        value,
			Anchor:       tint.Stop(viper.GetInt(key.ScaleAnchor)),
			LightnessMin: viper.GetInt(key.ScaleLightnessMin),
			LightnessMax: viper.GetInt(key.ScaleLightnessMax),
		}
		handleErr(request.Validate())

		var (
			tints []tint.Tint
			err   error
		)
		if viper.GetBool(key.RemoteEnabled) {
			tints, err = tintsdev.Scale(name, value)
		} else {
			tints, err = tint.Generate(request)
		}
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(tints))
			return
		}

		printScale(tints, value)
	},
}
