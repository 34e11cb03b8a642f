package service

import (
	"strings"
	"unicode"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

// CompareTemplates decides whether a deployed template still matches the
// expected one. Both texts are normalized by stripping comments and
// whitespace, then compared for exact equality. This is a textual diff only:
// a semantically equivalent but reformatted template counts as drift.
func CompareTemplates(expected, actual string) domain.PermissionStatus {
	if normalizeTemplate(expected) == normalizeTemplate(actual) {
		return domain.PermissionStatusCurrent
	}

	return domain.PermissionStatusNeedsUpdate
}

// normalizeTemplate strips every comment (from a '#' to end of line) and all
// whitespace. The result is line-ending independent.
func normalizeTemplate(template string) string {
	var b strings.Builder

	for _, line := range strings.Split(template, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		for _, r := range line {
			if !unicode.IsSpace(r) {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}
