package vault

import "unicode"

// PasswordScore rates a candidate password from 0 (very weak) to 5
// (strong). The score is advisory, shown during first-run setup; it
// never blocks a password the user insists on.
func PasswordScore(password string) int {
	score := 0

	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	if lower {
		score++
	}
	if upper {
		score++
	}
	if digit {
		score++
	}
	if special {
		score++
	}

	if score > 5 {
		score = 5
	}
	return score
}

// PasswordVerdict maps a score to a short display label.
func PasswordVerdict(score int) string {
	switch {
	case score <= 1:
		return "Very Weak"
	case score == 2:
		return "Weak"
	case score == 3:
		return "Fair"
	case score == 4:
		return "Good"
	default:
		return "Strong"
	}
}
