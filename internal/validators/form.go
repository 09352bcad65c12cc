package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	PhoneDigits       = 10
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsPassword counts characters, not bytes.
func IsPassword(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}

// DigitsOnly drops everything that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// PhoneHint is the progress message shown while a phone number is typed.
func PhoneHint(s string) string {
	n := len(DigitsOnly(s))
	if n == 0 || n == PhoneDigits {
		return ""
	}
	return fmt.Sprintf("Phone number must be exactly %d digits (%d/%d)", PhoneDigits, n, PhoneDigits)
}

// PhoneBlurError is the message shown when the phone field loses focus.
func PhoneBlurError(s string) string {
	n := len(DigitsOnly(s))
	switch {
	case n == 0 || n == PhoneDigits:
		return ""
	case n < PhoneDigits:
		return fmt.Sprintf("Phone number must be exactly %d digits", PhoneDigits)
	default:
		return fmt.Sprintf("Phone number cannot exceed %d digits", PhoneDigits)
	}
}

func EmailError(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || IsEmail(s) {
		return ""
	}
	return "Please enter a valid email address"
}
