package strength

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// commonPasswords mirrors the backend's demo blocklist, lowercased.
var commonPasswords = []string{
	"password", "123456", "12345678", "qwerty", "abc123",
	"111111", "iloveyou", "admin",
}

var digitRunRe = regexp.MustCompile(`(1234|2345|3456|4567|5678|6789|7890)`)

// hasRepeatRun reports whether s contains the same character three or more
// times in a row. Go's RE2 regexp has no backreferences, so `(.)\1{2,}`
// cannot be expressed as a pattern.
func hasRepeatRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

var keyboardWalks = []string{"qwerty", "asdf", "zxcv"}

// maxCommonDistance is the edit distance at which a password still counts as
// a near-miss of a blocklisted one ("passw0rd" vs "password").
const maxCommonDistance = 2

// Hints returns instant, display-only warnings about obvious weaknesses. It
// runs locally before the backend answers and never contributes to the score.
func Hints(password string) []string {
	if password == "" {
		return nil
	}
	lower := strings.ToLower(password)

	var hints []string
	if d, exact := commonDistance(lower); exact {
		hints = append(hints, "This is a well-known common password.")
	} else if d <= maxCommonDistance {
		hints = append(hints, "Very close to a common password.")
	}
	if hasRepeatRun(password) {
		hints = append(hints, "Contains repeated characters.")
	}
	if digitRunRe.MatchString(password) {
		hints = append(hints, "Contains a simple digit sequence.")
	}
	for _, walk := range keyboardWalks {
		if strings.Contains(lower, walk) {
			hints = append(hints, "Contains a keyboard sequence.")
			break
		}
	}
	return hints
}

// commonDistance returns the smallest edit distance to the blocklist and
// whether an exact match occurred.
func commonDistance(lower string) (int, bool) {
	best := len(lower) + 1
	for _, common := range commonPasswords {
		if lower == common {
			return 0, true
		}
		if d := levenshtein.ComputeDistance(lower, common); d < best {
			best = d
		}
	}
	return best, false
}
