// parser.go
package binmeta

import (
	"bufio"
	"strings"
)

// ParseOtoolDependencies extracts the referenced paths from `otool -L` output.
// Header lines (the inspected file, one per architecture slice) are skipped;
// every other line contributes its first whitespace-delimited token.
func ParseOtoolDependencies(output string) []string {
	var deps []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !isIndented(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		deps = append(deps, fields[0])
	}
	return deps
}

// ParseOtoolID extracts the install name from `otool -D` output
func ParseOtoolID(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			// file header, "path:" or "path (architecture x):"
			first = false
			continue
		}
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		return line
	}
	return ""
}

// ParseSoname extracts the SONAME value from an ELF dynamic section dump.
// objdump prints "  SONAME  libz.so.1", elfdump prints
// "  [3]  SONAME  0x1f  libz.so.1"; the value is the last field in both.
func ParseSoname(output string) string {
	values := dynamicValues(output, sonameMarker)
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// ParseNeeded extracts the NEEDED entries from an ELF dynamic section dump
func ParseNeeded(output string) []string {
	return dynamicValues(output, neededMarker)
}

func dynamicValues(output, marker string) []string {
	var values []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		for i, f := range fields {
			if f == marker && i < len(fields)-1 {
				values = append(values, fields[len(fields)-1])
				break
			}
		}
	}
	return values
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, " ")
}
