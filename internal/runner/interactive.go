package runner

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/URDev4ever/dorkfactory"
)

var (
	promptColor = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed)
	infoColor   = color.New(color.FgYellow)
)

// Session drives the interactive menu mode. It collects the same request
// options as the flag surface and funnels them through the same validation
// path (dorkfactory.NewRequest), so generation behaves identically in both
// modes.
type Session struct {
	catalog *dorkfactory.Catalog
	opts    *Options
	scanner *bufio.Scanner

	targets    []string
	exclusions []string
	engine     string
	categories []string
	profile    string

	strict            bool
	noiseReduction    bool
	excludeSubdomains bool
}

func NewSession(catalog *dorkfactory.Catalog, opts *Options) *Session {
	return &Session{
		catalog:           catalog,
		opts:              opts,
		scanner:           bufio.NewScanner(os.Stdin),
		targets:           opts.Targets,
		exclusions:        opts.Exclude,
		engine:            opts.Engine,
		categories:        opts.Categories,
		profile:           opts.Profile,
		strict:            opts.Strict,
		noiseReduction:    opts.NoiseReduction,
		excludeSubdomains: opts.ExcludeSubdomains,
	}
}

// Run loops on the main menu until the user quits or stdin closes.
func (s *Session) Run() error {
	for {
		s.printMainMenu()
		choice, ok := s.prompt("Select option")
		if !ok {
			return nil
		}
		switch strings.ToLower(choice) {
		case "1":
			s.setTargets()
		case "2":
			s.selectEngine()
		case "3":
			s.selectCategories()
		case "4":
			s.selectProfile()
		case "5":
			s.advancedOptions()
		case "6":
			s.generate()
		case "7":
			s.showConfig()
		case "h":
			s.showHelp()
		case "q":
			return nil
		default:
			errColor.Println("Invalid option!")
		}
	}
}

func (s *Session) printMainMenu() {
	fmt.Println()
	headerColor.Println("D O R K   F A C T O R Y")
	fmt.Println("  [1] Set Target(s)")
	fmt.Println("  [2] Select Search Engine")
	fmt.Println("  [3] Select Recon Categories")
	fmt.Println("  [4] Use Profile")
	fmt.Println("  [5] Advanced Options")
	fmt.Println("  [6] Generate Dorks")
	fmt.Println("  [7] Show Current Configuration")
	fmt.Println("  [H] Help   [Q] Quit")
	if len(s.targets) > 0 {
		infoColor.Printf("  targets: %d set\n", len(s.targets))
	}
	if len(s.categories) > 0 {
		infoColor.Printf("  categories: %d selected\n", len(s.categories))
	}
	if s.profile != "" {
		infoColor.Printf("  profile: %s\n", s.profile)
	}
}

func (s *Session) prompt(label string) (string, bool) {
	promptColor.Printf("%s\n> ", label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *Session) setTargets() {
	infoColor.Println("Enter target domains, one per line (wildcards like *.example.com supported).")
	infoColor.Println("Press Enter on an empty line to finish.")
	var targets []string
	for {
		line, ok := s.prompt(fmt.Sprintf("[%d]", len(targets)+1))
		if !ok || line == "" {
			break
		}
		targets = append(targets, line)
	}
	if len(targets) == 0 {
		errColor.Println("No targets specified!")
		return
	}
	s.targets = targets
	if excl, ok := s.prompt("Queries to exclude (comma-separated, optional)"); ok && excl != "" {
		s.exclusions = strings.Split(excl, ",")
	}
}

func (s *Session) selectEngine() {
	fmt.Println("  [1] Google\n  [2] Yandex\n  [3] Both")
	choice, ok := s.prompt("Select engine (1-3)")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.engine = "google"
	case "2":
		s.engine = "yandex"
	case "3":
		s.engine = "both"
	default:
		errColor.Println("Invalid choice! Please enter 1, 2, or 3.")
	}
}

func (s *Session) selectCategories() {
	categories := s.catalog.Categories()
	selected := map[string]struct{}{}
	for _, id := range s.categories {
		selected[id] = struct{}{}
	}
	for {
		fmt.Println()
		for i, cat := range categories {
			mark := "[ ]"
			if _, ok := selected[cat.ID]; ok {
				mark = "[x]"
			}
			fmt.Printf("  [%d] %s %s\n", i+1, mark, cat.Label)
		}
		infoColor.Println("Toggle with comma-separated numbers, 'all', 'none', 'done' to finish.")
		choice, ok := s.prompt("Your choice")
		if !ok {
			return
		}
		switch strings.ToLower(choice) {
		case "done":
			if len(selected) == 0 {
				errColor.Println("Please select at least one category!")
				continue
			}
			s.categories = nil
			for _, cat := range categories {
				if _, ok := selected[cat.ID]; ok {
					s.categories = append(s.categories, cat.ID)
				}
			}
			return
		case "all":
			for _, cat := range categories {
				selected[cat.ID] = struct{}{}
			}
		case "none":
			selected = map[string]struct{}{}
		default:
			for _, field := range strings.Split(choice, ",") {
				n, err := strconv.Atoi(strings.TrimSpace(field))
				if err != nil || n < 1 || n > len(categories) {
					errColor.Println("Invalid input!")
					continue
				}
				id := categories[n-1].ID
				if _, ok := selected[id]; ok {
					delete(selected, id)
				} else {
					selected[id] = struct{}{}
				}
			}
		}
	}
}

func (s *Session) selectProfile() {
	names := s.catalog.ProfileNames()
	for i, name := range names {
		fmt.Printf("  [%d] %s\n", i+1, name)
	}
	choice, ok := s.prompt("Select profile (number, Enter to skip)")
	if !ok || choice == "" {
		return
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(names) {
		errColor.Println("Invalid choice!")
		return
	}
	s.profile = names[n-1]
	infoColor.Printf("Profile %q applied as defaults.\n", s.profile)
}

func (s *Session) advancedOptions() {
	toggle := func(label string, value *bool) {
		state := "off"
		if *value {
			state = "on"
		}
		choice, ok := s.prompt(fmt.Sprintf("%s (currently %s) - toggle? (y/N)", label, state))
		if ok && strings.EqualFold(choice, "y") {
			*value = !*value
		}
	}
	toggle("Strict queries (high precision only)", &s.strict)
	toggle("Reduce noise (drop broad templates)", &s.noiseReduction)
	toggle("Exclude subdomains", &s.excludeSubdomains)
	toggle("Disable colors", &color.NoColor)
}

func (s *Session) generate() {
	request, err := dorkfactory.NewRequest(s.catalog, dorkfactory.RequestOptions{
		Targets:           s.targets,
		Engine:            s.engine,
		Categories:        s.categories,
		Profile:           s.profile,
		Exclusions:        s.exclusions,
		NoiseReduction:    s.noiseReduction,
		Strict:            s.strict,
		ExcludeSubdomains: s.excludeSubdomains,
	})
	if err != nil {
		errColor.Printf("%v\n", err)
		return
	}
	results, err := dorkfactory.Generate(s.catalog, request)
	if err != nil {
		errColor.Printf("%v\n", err)
		return
	}
	NewRenderer(os.Stdout, s.catalog).Render(results)

	if choice, ok := s.prompt("Export to file? (y/N)"); ok && strings.EqualFold(choice, "y") {
		path, ok := s.prompt("Filename (default: dorks.txt)")
		if !ok {
			return
		}
		if path == "" {
			path = "dorks.txt"
		}
		meta := ExportMeta{Targets: request.Targets, Engines: request.Engines, Profile: s.profile}
		if err := Export(path, results, meta); err != nil {
			errColor.Printf("export failed: %v\n", err)
			return
		}
		infoColor.Printf("Exported %d dorks to %s\n", results.Total(), path)
	}
}

func (s *Session) showConfig() {
	fmt.Println()
	infoColor.Println("Targets:")
	for _, target := range s.targets {
		fmt.Printf("  - %s\n", target)
	}
	if len(s.exclusions) > 0 {
		infoColor.Println("Exclusions:")
		for _, excl := range s.exclusions {
			fmt.Printf("  - %s\n", excl)
		}
	}
	engine := s.engine
	if engine == "" {
		engine = "google (default)"
	}
	infoColor.Printf("Engine: %s\n", engine)
	infoColor.Printf("Categories: %s\n", strings.Join(s.categories, ", "))
	if s.profile != "" {
		infoColor.Printf("Profile: %s\n", s.profile)
	}
	infoColor.Printf("Strict: %v  Noise reduction: %v  Exclude subdomains: %v\n",
		s.strict, s.noiseReduction, s.excludeSubdomains)
}

func (s *Session) showHelp() {
	fmt.Println(`
dorkfactory - passive recon query generator

Interactive mode:
  Navigate using menu numbers. Category selection toggles entries with
  comma-separated numbers and understands 'all', 'none' and 'done'.

Profiles bundle default engines, categories and filters. Explicit
selections made in this menu override the profile's defaults per field.

dorkfactory never performs scanning, crawling or any network request:
it only generates query strings and ready-to-open search URLs.`)
}
