package setupfile

import (
	"bufio"
	"sort"
	"strconv"
	"strings"
)

// metaSections are header names written for car/tooling identification,
// never treated as tunable parameters on read.
var metaSections = map[string]bool{
	"CAR": true, "__EXT_PATCH": true, "VERSION": true, "INFO": true,
}

// EncodeINI renders a flat parameter map into the on-disk .ini format used
// by the car's own setup files: one "[NAME]\nVALUE=n\n\n" block per
// parameter, in lexical order of name, followed by identification blocks
// (spec §4.8/§6).
func EncodeINI(params map[string]int, carID string) string {
	var b strings.Builder

	names := make([]string, 0, len(params))
	for name := range params {
		if strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString("[" + name + "]\n")
		b.WriteString("VALUE=" + strconv.Itoa(params[name]) + "\n\n")
	}

	b.WriteString("[CAR]\n")
	b.WriteString("MODEL=" + carID + "\n\n")

	b.WriteString("[__EXT_PATCH]\n")
	b.WriteString("VERSION=0.2.5-preview1\n\n")

	return b.String()
}

// DecodeINI parses a flat .ini setup file into its parameter values,
// skipping identification blocks. Lines it cannot parse are ignored
// rather than treated as a hard error, matching how a hand-edited or
// third-party-tool-written file is tolerated elsewhere in the pipeline.
func DecodeINI(text string) map[string]int {
	params := make(map[string]int)

	var currentSection string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			currentSection = line[1 : len(line)-1]
		case strings.HasPrefix(line, "VALUE=") && currentSection != "" && !metaSections[currentSection]:
			if v, err := strconv.Atoi(strings.TrimPrefix(line, "VALUE=")); err == nil {
				params[currentSection] = v
			}
		}
	}
	return params
}
