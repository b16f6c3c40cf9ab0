package junit

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/radiofrance/robotkw/pkg/keyword"
)

type Testsuite struct {
	XMLName   xml.Name   `json:"-"                   xml:"testsuite"`
	Name      string     `json:"name,omitempty"      xml:"name,attr"`
	Errors    string     `json:"errors,omitempty"    xml:"errors,attr"`
	Tests     string     `json:"tests,omitempty"     xml:"tests,attr"`
	Failures  string     `json:"failures,omitempty"  xml:"failures,attr"`
	Skipped   string     `json:"skipped,omitempty"   xml:"skipped,attr"`
	Timestamp string     `json:"timestamp,omitempty" xml:"timestamp,attr,omitempty"`
	TestCases []TestCase `json:"testcases,omitempty" xml:"testcase"`
}

type TestCase struct {
	XMLName   xml.Name `json:"-"                    xml:"testcase"`
	ClassName string   `json:"class_name,omitempty" xml:"classname,attr"`
	Name      string   `json:"name,omitempty"       xml:"name,attr"`
	SystemOut string   `json:"system_out,omitempty" xml:"system-out,omitempty"`
	Failure   string   `json:"failure,omitempty"    xml:"failure,omitempty"`
	Skipped   string   `json:"skipped,omitempty"    xml:"skipped,omitempty"`
}

// FromKeywords builds a test suite out of a keyword tree. Every keyword directly under the root
// becomes a test case; a root keyword without children is a test case on its own.
// Timestamps are not interpreted, the suite timestamp is the start time of the root keyword.
func FromKeywords(root keyword.Record) Testsuite {
	cases := root.Keywords
	if len(cases) == 0 {
		cases = []keyword.Record{root}
	}

	suite := Testsuite{
		Name:      root.DisplayName(),
		Errors:    "0",
		Timestamp: ptr.Deref(root.StartTime, ""),
		TestCases: make([]TestCase, 0, len(cases)),
	}

	var failures, skipped int
	for _, kw := range cases {
		testCase := TestCase{
			ClassName: root.DisplayName(),
			Name:      kw.DisplayName(),
			SystemOut: ptr.Deref(kw.StartTime, "") + " - " + ptr.Deref(kw.EndTime, ""),
		}

		switch kw.DisplayStatus() {
		case keyword.StatusFail:
			failures++
			testCase.Failure = failureMessage(kw)
		case keyword.StatusSkip, keyword.StatusNotRun:
			skipped++
			testCase.Skipped = kw.DisplayStatus()
		}

		suite.TestCases = append(suite.TestCases, testCase)
	}

	suite.Tests = strconv.Itoa(len(cases))
	suite.Failures = strconv.Itoa(failures)
	suite.Skipped = strconv.Itoa(skipped)

	return suite
}

// failureMessage lists the failed keywords found under kw, kw included, each one by its path.
func failureMessage(kw keyword.Record) string {
	return "failed keywords: " + strings.Join(failedPaths(kw, nil), ", ")
}

func failedPaths(kw keyword.Record, parents []string) []string {
	path := append(parents[:len(parents):len(parents)], kw.DisplayName())

	var failed []string
	if kw.DisplayStatus() == keyword.StatusFail {
		failed = append(failed, strings.Join(path, " > "))
	}
	for _, child := range kw.Keywords {
		failed = append(failed, failedPaths(child, path)...)
	}
	return failed
}

// Encode writes the test suite as an indented XML document, prolog included.
func Encode(w io.Writer, suite Testsuite) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suite); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
