package services

import "strings"

// testNameDelimiters folds every accepted separator into a newline so the
// list can be split in one pass.
var testNameDelimiters = strings.NewReplacer("\r", "\n", ";", "\n", ",", "\n")

// ParseTestCases splits a delimited test-name blob into an ordered list of
// names. Accepted delimiters are newline, carriage return, semicolon and
// comma. Tokens are trimmed and empty tokens dropped; duplicates and their
// first-occurrence order are preserved. Case is left untouched here - the
// matcher folds case, the output keeps the caller's spelling.
func ParseTestCases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var names []string
	for _, token := range strings.Split(testNameDelimiters.Replace(raw), "\n") {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// HasTestCases reports whether a raw test list contains anything worth
// analyzing at all.
func HasTestCases(raw string) bool {
	return strings.TrimSpace(raw) != ""
}
