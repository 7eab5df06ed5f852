package dorkfactory

import (
	"regexp"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
	// TargetVar is the only placeholder variable recognized in query templates
	TargetVar = "target"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// Replace substitutes the target placeholder in a query template on the fly.
func Replace(template string, target string) string {
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, map[string]interface{}{
		TargetVar: target,
	})
}

// returns no of placeholder variables present in template
func getVarCount(template string) int {
	return len(varRegex.FindAllStringSubmatch(template, -1))
}

// returns names of all placeholder variables
func getAllVars(template string) []string {
	var values []string
	for _, v := range varRegex.FindAllStringSubmatch(template, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}
