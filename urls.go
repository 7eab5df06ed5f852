package dorkfactory

import "net/url"

const (
	googleSearchEndpoint = "https://www.google.com/search"
	yandexSearchEndpoint = "https://yandex.com/search/"
)

// SearchURL builds a ready-to-open search URL for a generated query. The
// query string is treated as opaque and percent-encoded into the engine's
// query parameter. Returns an empty string for unknown engines.
func SearchURL(engine EngineID, query string) string {
	params := url.Values{}
	switch engine {
	case EngineGoogle:
		params.Set("q", query)
		params.Set("hl", "en")
		return googleSearchEndpoint + "?" + params.Encode()
	case EngineYandex:
		params.Set("text", query)
		return yandexSearchEndpoint + "?" + params.Encode()
	default:
		return ""
	}
}

// DorkURL is a convenience wrapper building the URL for a Dork value.
func DorkURL(d Dork) string {
	return SearchURL(d.Engine, d.Query)
}
