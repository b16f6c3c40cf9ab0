// Package robotkw converts a test execution report into a keyword record, and saves it.
package robotkw

import (
	"fmt"

	"github.com/radiofrance/robotkw/internal/logger"
	"github.com/radiofrance/robotkw/pkg/keyword"
	"github.com/radiofrance/robotkw/pkg/report"
	"github.com/radiofrance/robotkw/pkg/xmltree"
)

// Parse loads the report at source and extracts the keyword tree of its root element.
func Parse(source string) (keyword.Record, error) {
	logger.Debugf("Loading report %q", source)
	root, err := xmltree.Load(source)
	if err != nil {
		return keyword.Record{}, fmt.Errorf("load: %w", err)
	}

	record, err := keyword.Extract(root)
	if err != nil {
		return keyword.Record{}, fmt.Errorf("extract: %w", err)
	}

	return record, nil
}

// ExtractAndSave parses the report at source and saves the keyword record to destination.
// Nothing is written when the report cannot be loaded or extracted.
func ExtractAndSave(source, destination string, format report.Format) (keyword.Record, error) {
	record, err := Parse(source)
	if err != nil {
		return keyword.Record{}, err
	}

	logger.Debugf("Saving keyword record to %q as %s", destination, format)
	if err := report.Write(record, destination, format); err != nil {
		return keyword.Record{}, fmt.Errorf("save: %w", err)
	}

	return record, nil
}

// LogSummary prints the number of keywords by status.
func LogSummary(record keyword.Record) {
	summary := record.Summarize()
	logger.Infof("Keyword report for %q: %d keyword(s)", record.DisplayName(), summary.Total)
	for _, status := range []string{keyword.StatusPass, keyword.StatusFail, keyword.StatusSkip, keyword.StatusNotRun} {
		count := summary.ByStatus[status]
		if count == 0 {
			continue
		}
		if status == keyword.StatusFail {
			logger.Errorf("\t%s: %d", status, count)
			continue
		}
		logger.Infof("\t%s: %d", status, count)
	}
}
