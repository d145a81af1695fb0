package evaluators

import "strings"

// markerSet holds the per-line substrings that identify passing and
// failing tests in a test runner's output.
type markerSet struct {
	pass []string
	fail []string
}

// markersByLanguage maps a lowercase language tag to the markers its
// usual test runner emits. These are best-effort string scans, not
// parsers; the only contract is a partial score in [0,1] from combined
// process output.
var markersByLanguage = map[string]markerSet{
	"go": {
		pass: []string{"--- PASS:"},
		fail: []string{"--- FAIL:"},
	},
	"python": {
		pass: []string{" PASSED"},
		fail: []string{" FAILED", " ERROR"},
	},
	"javascript": {
		pass: []string{"✓", "√"},
		fail: []string{"✕", "✗"},
	},
	"typescript": {
		pass: []string{"✓", "√"},
		fail: []string{"✕", "✗"},
	},
	"rust": {
		pass: []string{"... ok"},
		fail: []string{"... FAILED"},
	},
}

// genericMarkers covers languages without a dedicated marker set.
var genericMarkers = markerSet{
	pass: []string{"PASS", "passed"},
	fail: []string{"FAIL", "failed"},
}

// ScanTestOutput counts pass/fail test markers in combined
// stdout+stderr. A line matching both counts as a failure. found is
// false when no marker of either kind appears, in which case no
// partial score can be derived.
func ScanTestOutput(language, output string) (passed, failed int, found bool) {
	set, ok := markersByLanguage[strings.ToLower(language)]
	if !ok {
		set = genericMarkers
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case containsAny(line, set.fail):
			failed++
		case containsAny(line, set.pass):
			passed++
		}
	}

	return passed, failed, passed+failed > 0
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
