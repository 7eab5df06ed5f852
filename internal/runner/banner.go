package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
   ___           __   ___          __
  / _ \___  ____/ /__/ _/__ ______/ /____  ______ __
 / // / _ \/ __/  '_/ _// _ '/ __/ __/ _ \/ __/ // /
/____/\___/_/ /_/\_\/_/  \_,_/\__/\__/\___/_/  \_, /
                                              /___/
`

var version = "v2.6.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tpassive recon query generator\n\n")
}

// GetUpdateCallback returns a callback function that updates dorkfactory
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("dorkfactory", version)()
	}
}
