package user

import "strings"

// NormalizeEmail is the form under which emails are stored and looked up.
// Surrounding blanks are dropped; case is significant.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Initial is the first letter of name, upper-cased, used as avatar glyph.
func Initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return ""
}
