package report

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/qaforge/qaforge/internal/metrics"
)

// jacocoRelPath is the coverage report location under the build output root.
var jacocoRelPath = filepath.Join("site", "jacoco", "jacoco.xml")

// counterElement is the JaCoCo counter element name.
const counterElement = "counter"

// counterTypeLine selects the line-granularity counter.
const counterTypeLine = "LINE"

// jacocoCounter holds one <counter> element's attributes.
type jacocoCounter struct {
	Type    string
	Covered int
	Missed  int
}

// JacocoLoader reads line coverage from a JaCoCo XML report.
type JacocoLoader struct{}

// Kind returns the source identifier for line coverage.
func (JacocoLoader) Kind() Kind { return KindCoverage }

// Load parses the coverage report. Counters that are direct children of the
// report root are preferred; when the root carries none, the whole tree is
// searched instead. A parsed report without any LINE counter is still absent.
func (JacocoLoader) Load(root string, bundle *Bundle) {
	bundle.Coverage = loadJacoco(root)
}

func loadJacoco(root string) *Coverage {
	data, readErr := os.ReadFile(filepath.Join(root, jacocoRelPath))
	if readErr != nil {
		return nil
	}

	direct, all, parseErr := scanCounters(data)
	if parseErr != nil {
		return nil
	}

	counters := direct
	if len(counters) == 0 {
		counters = all
	}

	for _, counter := range counters {
		if counter.Type != counterTypeLine {
			continue
		}

		total := counter.Covered + counter.Missed

		return &Coverage{
			Covered: counter.Covered,
			Missed:  counter.Missed,
			Total:   total,
			Percent: metrics.Percent(float64(counter.Covered), float64(total)),
		}
	}

	return nil
}

// scanCounters walks the XML token stream once, collecting counter elements
// that sit directly under the document root separately from all counters at
// any depth.
func scanCounters(data []byte) (direct, all []jacocoCounter, err error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	// JaCoCo reports declare an external DTD; there is nothing to resolve.
	decoder.Entity = xml.HTMLEntity

	depth := 0

	for {
		token, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			return direct, all, nil
		}

		if tokenErr != nil {
			return nil, nil, tokenErr
		}

		switch element := token.(type) {
		case xml.StartElement:
			depth++

			if element.Name.Local == counterElement {
				counter := parseCounterAttrs(element)

				all = append(all, counter)

				if depth == 2 {
					direct = append(direct, counter)
				}
			}
		case xml.EndElement:
			depth--
		}
	}
}

func parseCounterAttrs(element xml.StartElement) jacocoCounter {
	counter := jacocoCounter{}

	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "type":
			counter.Type = attr.Value
		case "covered":
			counter.Covered, _ = strconv.Atoi(attr.Value)
		case "missed":
			counter.Missed, _ = strconv.Atoi(attr.Value)
		}
	}

	return counter
}
