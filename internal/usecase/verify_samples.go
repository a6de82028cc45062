package usecase

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"

	"github.com/taurgis/aegis-docsite/internal/domain"
)

// VerifySamples checks the published code samples against their structural
// checks. YAML samples must decode, and JSONPath expressions over the decoded
// document must resolve to the promised values. Other languages use
// substring checks against the raw source.
type VerifySamples struct {
	samples []domain.CodeSample
}

func NewVerifySamples(samples []domain.CodeSample) *VerifySamples {
	return &VerifySamples{samples: samples}
}

// Execute runs every check of every sample. A failing check is reported, not
// fatal; all checks always run.
func (uc *VerifySamples) Execute() []domain.SampleResult {
	var out []domain.SampleResult

	for _, s := range uc.samples {
		out = append(out, verifyOne(s)...)
	}

	return out
}

func verifyOne(s domain.CodeSample) []domain.SampleResult {
	if s.Language != domain.LangYAML {
		return verifySubstrings(s)
	}

	var doc any
	if err := yaml.Unmarshal([]byte(s.Source), &doc); err != nil {
		// The sample does not even parse: fail every check with the cause.
		out := make([]domain.SampleResult, 0, len(s.Checks))
		for _, c := range s.Checks {
			out = append(out, domain.SampleResult{
				Sample:  s.Name,
				Check:   c.Name,
				Passed:  false,
				Message: fmt.Sprintf("sample is not valid YAML: %v", err),
			})
		}
		return out
	}

	out := make([]domain.SampleResult, 0, len(s.Checks))
	for _, c := range s.Checks {
		out = append(out, verifyPath(s.Name, c, doc))
	}
	return out
}

func verifyPath(sample string, c domain.SampleCheck, doc any) domain.SampleResult {
	res := domain.SampleResult{Sample: sample, Check: c.Name}

	val, err := jsonpath.Get(c.Path, doc)
	if err != nil {
		res.Message = fmt.Sprintf("jsonpath %q: %v", c.Path, err)
		return res
	}

	if c.Equals != nil {
		got := fmt.Sprintf("%v", val)
		if got == *c.Equals {
			res.Passed = true
			res.Message = fmt.Sprintf("%s == %q", c.Path, got)
		} else {
			res.Message = fmt.Sprintf("%s: expected %q, got %q", c.Path, *c.Equals, got)
		}
		return res
	}

	if c.Exists {
		if val == nil {
			res.Message = fmt.Sprintf("%s resolved to null", c.Path)
			return res
		}
		res.Passed = true
		res.Message = fmt.Sprintf("%s exists", c.Path)
		return res
	}

	res.Message = "check has neither equals nor exists"
	return res
}

func verifySubstrings(s domain.CodeSample) []domain.SampleResult {
	out := make([]domain.SampleResult, 0, len(s.Checks))

	for _, c := range s.Checks {
		res := domain.SampleResult{Sample: s.Name, Check: c.Name}
		if c.Contains == nil {
			res.Message = fmt.Sprintf("%s sample checks must use contains", s.Language)
		} else if strings.Contains(s.Source, *c.Contains) {
			res.Passed = true
			res.Message = fmt.Sprintf("source contains %q", *c.Contains)
		} else {
			res.Message = fmt.Sprintf("source missing %q", *c.Contains)
		}
		out = append(out, res)
	}

	return out
}

// CountSampleFailures returns the number of failed results.
func CountSampleFailures(results []domain.SampleResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
