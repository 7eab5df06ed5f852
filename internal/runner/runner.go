package runner

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
	"golang.org/x/net/publicsuffix"

	"github.com/URDev4ever/dorkfactory"
)

type Options struct {
	Targets    goflags.StringSlice // target domains/wildcards to fill templates with
	Exclude    goflags.StringSlice // substrings/globs that must not occur in results
	Engine     string              // google, yandex or both
	Categories goflags.StringSlice // category ids or "all"
	Profile    string              // preset profile name

	NoiseReduction    bool
	Strict            bool
	ExcludeSubdomains bool

	Export       string
	Silent       bool
	NoColor      bool
	Verbose      bool
	NoBanner     bool
	Interactive  bool
	ShowProfiles bool

	Config             string
	DorkConfig         string
	SampleConfig       string
	DisableUpdateCheck bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Search engine dork generator for passive reconnaissance.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Targets, "target", "t", nil, "target domains to generate dorks for (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Exclude, "exclude", "x", nil, "drop generated queries containing these strings/globs (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("generation", "Generation",
		flagSet.StringVarP(&opts.Engine, "engine", "e", "", "search engine to target (google, yandex, both)"),
		flagSet.StringSliceVarP(&opts.Categories, "category", "c", nil, "recon categories to generate (comma-separated, or 'all')", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Profile, "profile", "p", "", "preset profile supplying default engines/categories/filters"),
		flagSet.BoolVar(&opts.ShowProfiles, "profiles", false, "list available profiles and categories"),
	)

	flagSet.CreateGroup("filter", "Filter",
		flagSet.BoolVarP(&opts.NoiseReduction, "noise-reduction", "nr", false, "drop broad high-noise query templates"),
		flagSet.BoolVar(&opts.Strict, "strict", false, "keep only high precision query templates"),
		flagSet.BoolVarP(&opts.ExcludeSubdomains, "exclude-subdomains", "es", false, "rewrite site: queries to exclude subdomain hits"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Export, "export", "o", "", "export results to file (.txt, .md or .json by extension)"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display generated dorks only"),
		flagSet.BoolVarP(&opts.NoColor, "no-color", "nc", false, "disable colored output"),
		flagSet.BoolVarP(&opts.NoBanner, "no-banner", "nb", false, "disable banner"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.CallbackVar(printVersion, "version", "display dorkfactory version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", "dorkfactory cli config file"),
		flagSet.StringVarP(&opts.DorkConfig, "dork-config", "dc", "", "custom dork catalog file (yaml)"),
		flagSet.StringVarP(&opts.SampleConfig, "sample-config", "sc", "", "write the built-in catalog to a yaml file and exit"),
		flagSet.BoolVarP(&opts.Interactive, "interactive", "i", false, "force interactive menu mode"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update dorkfactory to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic dorkfactory update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if opts.NoColor {
		color.NoColor = true
	}
	if !opts.NoBanner && !opts.Silent {
		showBanner()
	}

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("dorkfactory")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("dorkfactory version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current dorkfactory version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read targets from stdin when piped
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Targets = append(opts.Targets, strings.Fields(string(bin))...)
	}

	return opts
}

// Run executes one dorkfactory invocation. Menu mode is entered when forced
// with -i or when no generation flags are given at all.
func Run(opts *Options) error {
	if opts.SampleConfig != "" {
		if err := dorkfactory.GenerateSample(opts.SampleConfig); err != nil {
			return err
		}
		gologger.Info().Msgf("Sample dork config written to %v", opts.SampleConfig)
		return nil
	}

	catalog := dorkfactory.DefaultCatalog()
	if opts.DorkConfig != "" {
		cfg, err := dorkfactory.NewConfig(opts.DorkConfig)
		if err != nil {
			return err
		}
		if catalog, err = cfg.Catalog(); err != nil {
			return err
		}
		gologger.Verbose().Msgf("loaded custom dork catalog from %v", opts.DorkConfig)
	}

	if opts.ShowProfiles {
		printProfiles(catalog)
		return nil
	}

	if opts.Interactive || (len(opts.Targets) == 0 && opts.Profile == "" && len(opts.Categories) == 0) {
		return NewSession(catalog, opts).Run()
	}

	request, err := dorkfactory.NewRequest(catalog, dorkfactory.RequestOptions{
		Targets:           opts.Targets,
		Engine:            opts.Engine,
		Categories:        opts.Categories,
		Profile:           opts.Profile,
		Exclusions:        opts.Exclude,
		NoiseReduction:    opts.NoiseReduction,
		Strict:            opts.Strict,
		ExcludeSubdomains: opts.ExcludeSubdomains,
	})
	if err != nil {
		return err
	}
	warnPublicSuffixTargets(request.Targets)

	results, err := dorkfactory.Generate(catalog, request)
	if err != nil {
		return err
	}

	if opts.Silent {
		writeFlat(os.Stdout, results)
	} else {
		NewRenderer(os.Stdout, catalog).Render(results)
	}

	if opts.Export != "" {
		meta := ExportMeta{
			Targets: request.Targets,
			Engines: request.Engines,
			Profile: opts.Profile,
		}
		if err := Export(opts.Export, results, meta); err != nil {
			return err
		}
		gologger.Info().Msgf("Exported %v dorks to %v", results.Total(), opts.Export)
	}
	return nil
}

// warnPublicSuffixTargets flags targets that are bare public suffixes, those
// produce dorks matching every domain under the suffix.
func warnPublicSuffixTargets(targets []string) {
	for _, target := range targets {
		domain := strings.TrimPrefix(target, "*.")
		suffix, _ := publicsuffix.PublicSuffix(domain)
		if suffix == domain {
			gologger.Warning().Msgf("target %v is a public suffix, generated queries will be extremely broad", target)
		}
	}
}

func printProfiles(catalog *dorkfactory.Catalog) {
	gologger.Silent().Msgf("Profiles: %v", strings.Join(catalog.ProfileNames(), ", "))
	gologger.Silent().Msgf("Categories:")
	for _, cat := range catalog.Categories() {
		gologger.Silent().Msgf("  %-20v %v", cat.ID, cat.Label)
	}
}

func writeFlat(w io.Writer, results *dorkfactory.ResultSet) {
	for _, category := range results.Categories() {
		for _, engine := range results.Engines(category) {
			for _, d := range results.Bucket(category, engine) {
				w.Write([]byte(d.Query + "\n"))
			}
		}
	}
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
