package version

import (
	"fmt"

	"github.com/freetint-cli/freetint/color"
	"github.com/freetint-cli/freetint/constant"
	"github.com/freetint-cli/freetint/icon"
	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/style"
	"github.com/freetint-cli/freetint/util"
	"github.com/spf13/viper"
)

// Notify prints a short terminal note when a newer release is published.
// The probe is best effort: failures and up-to-date installs stay silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/freetint-cli/freetint/releases/tag/v"+latest),
	)
}
