package domain

// SampleLanguage is the language tag a code sample renders with.
type SampleLanguage string

const (
	LangYAML       SampleLanguage = "yaml"
	LangJavaScript SampleLanguage = "javascript"
	LangBash       SampleLanguage = "bash"
)

// CodeSample is a verbatim source literal published on a page, together with
// structural checks that pin the sample to the API surface the prose promises.
type CodeSample struct {
	Name     string
	Language SampleLanguage
	Source   string
	Checks   []SampleCheck
}

// SampleCheck is one structural check against a sample.
//
// For YAML samples, Path is a JSONPath expression evaluated over the decoded
// document; Exists and Equals apply to the resolved value. For other
// languages, Contains asserts a substring of the raw source.
type SampleCheck struct {
	Name     string
	Path     string
	Exists   bool
	Equals   *string
	Contains *string
}

// SampleResult is the outcome of a single sample check.
type SampleResult struct {
	Sample  string
	Check   string
	Passed  bool
	Message string
}
