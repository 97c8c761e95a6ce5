package element

// Lang is an ISO 639-1 language code.
type Lang string

// Region is an ISO 3166-1 alpha-2 region code, or empty when unspecified.
type Region string

// Languages with built-in element localizations.
const (
	LangEnglish Lang = "en"
	LangFrench  Lang = "fr"
	LangGerman  Lang = "de"
	LangSpanish Lang = "es"
)
