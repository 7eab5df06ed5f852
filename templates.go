package dorkfactory

// Default catalog data. Categories, per-engine templates and profiles are the
// program's domain knowledge, authored here and overridable via a yaml dork
// config file. Yandex uses its own operator dialect (url:, title:, mime:)
// where Google uses inurl:, intitle: and filetype:, so operator templates
// carry engine-specific variants while plain phrase templates apply to both.

var defaultCategories = []Category{
	{ID: "panels-auth", Label: "Panels & Authentication"},
	{ID: "sensitive-files", Label: "Sensitive Files"},
	{ID: "errors-debug", Label: "Errors & Debug"},
	{ID: "apis-endpoints", Label: "APIs & Endpoints"},
	{ID: "osint", Label: "OSINT"},
	{ID: "vulnerabilities", Label: "Vulnerabilities"},
	{ID: "backups-logs", Label: "Backups & Logs"},
	{ID: "config-files", Label: "Configuration Files"},
	{ID: "directory-listings", Label: "Directory Listings"},
	{ID: "database-dumps", Label: "Database Dumps"},
}

var defaultTemplates = map[string][]QueryTemplate{
	"panels-auth": {
		{Query: `site:{{target}} intitle:"login" | intitle:"admin" | intitle:"dashboard"`, Engines: []EngineID{EngineGoogle}},
		{Query: `site:{{target}} title:(login | admin | dashboard)`, Engines: []EngineID{EngineYandex}},
		{Query: `site:{{target}} inurl:login | inurl:admin | inurl:wp-admin`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} url:login | url:admin`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "index of /admin"`, Precision: PrecisionHigh},
		{Query: `site:{{target}} "admin panel" | "control panel"`, Precision: PrecisionLow},
		{Query: `site:{{target}} filetype:php inurl:login`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
	},
	"sensitive-files": {
		{Query: `site:{{target}} ext:env | ext:yml | ext:yaml | ext:config`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} url:env | url:yml | url:config`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "SECRET_KEY" | "API_KEY" | "PASSWORD"`},
		{Query: `site:{{target}} filetype:sql | filetype:db | filetype:mdb`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "phpinfo()" "PHP Version"`, Precision: PrecisionHigh},
		{Query: `site:{{target}} "robots.txt" "disallow:"`, Noisy: true},
	},
	"errors-debug": {
		{Query: `site:{{target}} "error" | "exception" | "stack trace"`, Noisy: true, Precision: PrecisionLow},
		{Query: `site:{{target}} "debug" | "testing" | "staging"`, Noisy: true, Precision: PrecisionLow},
		{Query: `site:{{target}} intitle:"internal server error"`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} title:"internal server error"`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "syntax error" | "mysql_fetch"`},
	},
	"apis-endpoints": {
		{Query: `site:{{target}} inurl:api | inurl:graphql | inurl:rest`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} url:api | url:graphql`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "swagger" | "openapi" | "postman"`},
		{Query: `site:{{target}} "api/v1" | "api/v2"`},
		{Query: `site:{{target}} filetype:json inurl:api`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
	},
	"osint": {
		{Query: `site:{{target}} "contact" | "about us"`, Noisy: true, Precision: PrecisionLow},
		{Query: `site:{{target}} filetype:pdf | filetype:doc | filetype:docx`, Engines: []EngineID{EngineGoogle}},
		{Query: `site:{{target}} mime:pdf | mime:doc | mime:docx`, Engines: []EngineID{EngineYandex}},
		{Query: `site:{{target}} "employee" | "team" | "careers"`, Noisy: true, Precision: PrecisionLow},
		{Query: `site:{{target}} "confidential" | "internal use only"`, Precision: PrecisionHigh},
	},
	"vulnerabilities": {
		{Query: `site:{{target}} "wp-content" "vulnerable"`, Precision: PrecisionLow},
		{Query: `site:{{target}} "sql injection" | "xss" | "csrf"`, Precision: PrecisionLow},
		{Query: `site:{{target}} "cve-" | "security advisory"`},
		{Query: `site:{{target}} inurl:wp-content/plugins`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} url:wp-content/plugins`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
	},
	"backups-logs": {
		{Query: `site:{{target}} ext:bak | ext:old | ext:backup`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} url:backup | url:bak`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "backup" | "dump" | "archive"`, Noisy: true, Precision: PrecisionLow},
		{Query: `site:{{target}} ext:log | ext:logs`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} "database backup" | "db dump"`},
	},
	"config-files": {
		{Query: `site:{{target}} filetype:ini | filetype:cfg | filetype:conf`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
		{Query: `site:{{target}} url:config | url:conf`, Engines: []EngineID{EngineYandex}, Precision: PrecisionHigh},
		{Query: `site:{{target}} ".git/config" | ".env.example"`, Precision: PrecisionHigh},
		{Query: `site:{{target}} "config.php" | "settings.py"`, Precision: PrecisionHigh},
		{Query: `site:{{target}} "docker-compose.yml" | "dockerfile"`},
	},
	"directory-listings": {
		{Query: `site:{{target}} "index of /" "parent directory"`, Precision: PrecisionHigh},
		{Query: `site:{{target}} intitle:"index of"`, Engines: []EngineID{EngineGoogle}},
		{Query: `site:{{target}} title:"index of"`, Engines: []EngineID{EngineYandex}},
		{Query: `site:{{target}} "directory listing"`, Noisy: true, Precision: PrecisionLow},
		{Query: `site:{{target}} inurl:/uploads/ | inurl:/files/`, Engines: []EngineID{EngineGoogle}},
	},
	"database-dumps": {
		{Query: `site:{{target}} "mysql dump" | "pg_dump"`},
		{Query: `site:{{target}} "db.sql" | "database.sql"`, Precision: PrecisionHigh},
		{Query: `site:{{target}} "INSERT INTO" | "CREATE TABLE"`, Precision: PrecisionLow},
		{Query: `site:{{target}} filetype:sql "-- Dump"`, Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
	},
}

var defaultProfiles = map[string]Profile{
	"bugbounty": {
		Name:       "bugbounty",
		Engines:    []EngineID{EngineGoogle, EngineYandex},
		Categories: []string{"panels-auth", "sensitive-files", "apis-endpoints", "vulnerabilities", "config-files"},
		Filter:     FilterSpec{Strict: true, NoiseReduction: true},
	},
	"osint-company": {
		Name:       "osint-company",
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"osint", "sensitive-files", "apis-endpoints"},
	},
	"ctf": {
		Name:       "ctf",
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth", "sensitive-files", "backups-logs", "config-files", "directory-listings"},
		Filter:     FilterSpec{Strict: true},
	},
	"webapp-basic": {
		Name:       "webapp-basic",
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth", "sensitive-files", "errors-debug"},
	},
	"full-scope": {
		Name:    "full-scope",
		Engines: []EngineID{EngineGoogle, EngineYandex},
		Categories: []string{
			"panels-auth", "sensitive-files", "errors-debug", "apis-endpoints", "osint",
			"vulnerabilities", "backups-logs", "config-files", "directory-listings", "database-dumps",
		},
	},
}

var defaultCatalog = mustCatalog()

func mustCatalog() *Catalog {
	c, err := NewCatalog(defaultCategories, defaultTemplates, defaultProfiles)
	if err != nil {
		panic("dorkfactory: invalid default catalog: " + err.Error())
	}
	return c
}

// DefaultCatalog returns the built-in catalog shared by all requests.
// It is immutable, callers must not retain and mutate its data.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
