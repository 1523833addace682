package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
)

var errNoResult = errors.New("search returned no result")

const Separator = "\n===============================================================\n"

// Header is the first line of a search report, e.g. "A* Search Heuristic: euclidean w = 2".
func Header(algorithm search.Algorithm, heuristic string, weight float64) string {
	return fmt.Sprintf("%s Search Heuristic: %s w = %s", algorithm.Title(), heuristic,
		strconv.FormatFloat(weight, 'f', -1, 64))
}

// WriteScenarioHeader opens the report file of one scenario.
func WriteScenarioHeader(sink ResultSink, scenarioName string) error {
	return sink.Write("<" + scenarioName + ">" + Separator)
}

// WriteResult writes header and then either the plan summary or "Fringe empty".
// heuristicValue is h of the initial node.
func WriteResult(sink ResultSink, header string, res *search.Result, heuristicValue float64) error {
	if err := sink.Write(header); err != nil {
		return err
	}
	if !res.Solved() {
		if res.Status == search.StatusBudgetExceeded {
			return sink.Write("Search budget exceeded after " + strconv.Itoa(res.NodeCount) + " nodes")
		}
		return sink.Write("Fringe empty")
	}

	lines := []string{
		"Visited Nodes : " + strconv.Itoa(res.NodeCount),
		"Path : " + FormatPath(res),
		"Heuristic cost : " + formatNumber(heuristicValue),
		"Estimated Cost On Goal: " + formatNumber(res.Cost),
		Separator,
	}
	for _, l := range lines {
		if err := sink.Write(l); err != nil {
			return err
		}
	}
	return nil
}

// WriteError reports a search that failed before producing a result.
func WriteError(sink ResultSink, header string, searchErr error) error {
	if err := sink.Write(header); err != nil {
		return err
	}
	if err := sink.Write("Search failed: " + searchErr.Error()); err != nil {
		return err
	}
	return sink.Write(Separator)
}

// WriteSweep writes one report per sweep entry. A failed entry gets an error report and the
// remaining entries are still written; failed counts them. err is only a sink error.
func WriteSweep(sink ResultSink, results []engine.SweepResult) (failed int, err error) {
	for _, sr := range results {
		header := Header(sr.Request.Algorithm, sr.Request.Heuristic.String(), sr.Request.Weight)
		if sr.Err != nil || sr.Result == nil {
			failed++
			searchErr := sr.Err
			if searchErr == nil {
				searchErr = errNoResult
			}
			if err := WriteError(sink, header, searchErr); err != nil {
				return failed, err
			}
			continue
		}
		if err := WriteResult(sink, header, sr.Result, sr.Result.HeuristicValue); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// FormatPath renders the solution positions as "(x,y)->(x,y)" with two decimals.
func FormatPath(res *search.Result) string {
	var sb strings.Builder
	for i, s := range res.Path {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// formatNumber prints integral values with a trailing ".0" so costs always read as reals.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
