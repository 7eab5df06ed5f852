package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/URDev4ever/dorkfactory"
)

// ExportMeta carries request context written into export headers.
type ExportMeta struct {
	Targets []string
	Engines []dorkfactory.EngineID
	Profile string
}

// Export serializes a result set to a file. The format is chosen by
// extension: .json, .md, anything else is written as flat text. Grouping and
// ordering of the result set are reproduced losslessly in every format.
func Export(path string, results *dorkfactory.ResultSet, meta ExportMeta) error {
	var bin []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		bin, err = marshalJSON(results)
	case ".md":
		bin = marshalMarkdown(results, meta)
	default:
		bin = marshalText(results, meta)
	}
	if err != nil {
		return errorutil.NewWithTag("export", "failed to serialize results: %v", err)
	}
	return os.WriteFile(path, bin, 0644)
}

// marshalText writes one dork per line with category/engine headers as
// comments, the original export format.
func marshalText(results *dorkfactory.ResultSet, meta ExportMeta) []byte {
	var buf bytes.Buffer
	buf.WriteString("# dorkfactory export\n")
	buf.WriteString(fmt.Sprintf("# targets: %s\n", strings.Join(meta.Targets, ", ")))
	buf.WriteString(fmt.Sprintf("# engines: %s\n", joinEngines(meta.Engines)))
	if meta.Profile != "" {
		buf.WriteString(fmt.Sprintf("# profile: %s\n", meta.Profile))
	}
	buf.WriteString("\n")
	for _, category := range results.Categories() {
		buf.WriteString(fmt.Sprintf("## %s\n", category))
		for _, engine := range results.Engines(category) {
			buf.WriteString(fmt.Sprintf("# engine: %s\n", engine))
			for _, d := range results.Bucket(category, engine) {
				buf.WriteString(d.Query + "\n")
			}
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// marshalMarkdown writes headings per category with per-engine sub-bullets.
func marshalMarkdown(results *dorkfactory.ResultSet, meta ExportMeta) []byte {
	var buf bytes.Buffer
	buf.WriteString("# dorkfactory export\n\n")
	buf.WriteString(fmt.Sprintf("- targets: %s\n", strings.Join(meta.Targets, ", ")))
	buf.WriteString(fmt.Sprintf("- engines: %s\n", joinEngines(meta.Engines)))
	if meta.Profile != "" {
		buf.WriteString(fmt.Sprintf("- profile: %s\n", meta.Profile))
	}
	buf.WriteString("\n")
	for _, category := range results.Categories() {
		buf.WriteString(fmt.Sprintf("## %s\n\n", category))
		for _, engine := range results.Engines(category) {
			buf.WriteString(fmt.Sprintf("- **%s**\n", engine))
			for _, d := range results.Bucket(category, engine) {
				buf.WriteString(fmt.Sprintf("  - `%s` ([open](%s))\n", d.Query, dorkfactory.DorkURL(d)))
			}
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// marshalJSON writes an object keyed category -> engine -> array of dork
// strings. Keys are emitted manually so category and engine order survive.
func marshalJSON(results *dorkfactory.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	categories := results.Categories()
	for i, category := range categories {
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  " + string(key) + ": {\n")
		engines := results.Engines(category)
		for j, engine := range engines {
			queries, err := json.Marshal(results.Queries(category, engine))
			if err != nil {
				return nil, err
			}
			buf.WriteString(fmt.Sprintf("    %q: %s", string(engine), queries))
			if j < len(engines)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString("  }")
		if i < len(categories)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func joinEngines(engines []dorkfactory.EngineID) string {
	names := make([]string, 0, len(engines))
	for _, engine := range engines {
		names = append(names, string(engine))
	}
	return strings.Join(names, ", ")
}
