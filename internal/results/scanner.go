// Package results ingests cognitive-test result files: XML documents
// dropped into per-test folders, from which a percentage score is
// extracted.
package results

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Result is the latest outcome found for one test.
type Result struct {
	TestType string  `json:"testType"`
	Score    float64 `json:"score"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
}

// scoreMode selects which XML fields carry the score for a test.
type scoreMode int

const (
	// modePercentage reads a <Percentage> element directly.
	modePercentage scoreMode = iota
	// modeRatio computes Score/Max * 100.
	modeRatio
	// modeEither prefers <Percentage> and falls back to Score/Max.
	modeEither
)

type testSpec struct {
	name   string
	folder string
	mode   scoreMode
}

// Folder layout mirrors the assessment battery that feeds this service.
var testSpecs = []testSpec{
	{"BACS Symbol Coding", "mccb-001-symbol-coding", modePercentage},
	{"Animal Naming", "mccb-002-animal_naming", modeEither},
	{"Trail Making", "mccb-003-trail-making", modePercentage},
	{"CPT-IP", "mccb-004-cpt-ip", modePercentage},
	{"WMS-III Spatial Span", "mccb-005-wms-iii-spatial-span", modeRatio},
	{"Letter-Number Span", "mccb-006-letter-number-span", modeRatio},
	{"HVLT-R", "mccb-007-hvlt-r", modePercentage},
	{"BVMT-R", "mccb-008-bvmt-r", modePercentage},
	{"NAB Mazes", "mccb-009-nab-mazes", modeRatio},
}

// Scanner reads test results from the per-test folders under Dir.
type Scanner struct {
	Dir string
}

func NewScanner(dir string) *Scanner {
	return &Scanner{Dir: dir}
}

// Scan reports, for every known test, the score from the most recent XML
// file in its folder (or its data/ subfolder). Missing folders are skipped;
// folders without files or with unparseable files are reported as such
// rather than failing the scan.
func (s *Scanner) Scan() []Result {
	var out []Result

	for _, spec := range testSpecs {
		folder := filepath.Join(s.Dir, spec.folder)
		if _, err := os.Stat(folder); err != nil {
			continue
		}

		files, _ := filepath.Glob(filepath.Join(folder, "*.xml"))
		if len(files) == 0 {
			files, _ = filepath.Glob(filepath.Join(folder, "data", "*.xml"))
		}
		if len(files) == 0 {
			out = append(out, Result{
				TestType: spec.name,
				Date:     "No data",
				Status:   "No file found",
			})
			continue
		}

		latest := latestByModTime(files)
		info, err := os.Stat(latest)
		if err != nil {
			continue
		}
		date := info.ModTime().Format("2006-01-02")

		raw, err := os.ReadFile(latest)
		if err != nil {
			out = append(out, Result{TestType: spec.name, Date: date, Status: "Read error: " + err.Error()})
			continue
		}

		score, err := extractScore(raw, spec.mode)
		if err != nil {
			out = append(out, Result{TestType: spec.name, Date: date, Status: "Parse error: " + err.Error()})
			continue
		}

		out = append(out, Result{
			TestType: spec.name,
			Score:    score,
			Date:     date,
			Status:   "Found data",
		})
	}
	return out
}

func latestByModTime(files []string) string {
	latest := files[0]
	var latestMod int64
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); mod >= latestMod {
			latestMod = mod
			latest = f
		}
	}
	return latest
}

// extractScore pulls the percentage score out of a result document. The
// relevant elements may sit at any depth, so the document is walked rather
// than mapped to a fixed schema.
func extractScore(raw []byte, mode scoreMode) (float64, error) {
	var percentage, score, max *float64

	dec := xml.NewDecoder(bytes.NewReader(raw))
	var current string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			current = t.Name.Local
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				continue
			}
			switch current {
			case "Percentage":
				percentage = &v
			case "Score":
				score = &v
			case "Max":
				max = &v
			}
		case xml.EndElement:
			current = ""
		}
	}

	if mode != modeRatio && percentage != nil {
		return *percentage, nil
	}
	if mode != modePercentage && score != nil && max != nil && *max != 0 {
		return *score / *max * 100, nil
	}
	return 0, nil
}
