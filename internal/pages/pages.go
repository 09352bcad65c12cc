package pages

import (
	"strings"

	"github.com/BruksfildServices01/home-services/internal/httperr"
)

type Page string

const (
	Index    Page = "index"
	Home     Page = "home"
	Bookings Page = "bookings"
	Feedback Page = "feedback"
	Profile  Page = "profile"

	// Any marks commands available from every page, such as logout.
	Any Page = "*"
)

// Landing is where authenticated users end up by default.
const Landing = Home

// Set is the collection of pages served by this instance.
type Set map[Page]bool

func NewSet(feedbackEnabled bool) Set {
	s := Set{Index: true, Home: true, Bookings: true, Profile: true}
	if feedbackEnabled {
		s[Feedback] = true
	}
	return s
}

// Parse accepts "bookings", "bookings.html" and "/bookings.html". An empty
// name is the entry page.
func (s Set) Parse(name string) (Page, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "/")
	n = strings.TrimSuffix(n, ".html")
	if n == "" {
		return Index, nil
	}

	p := Page(n)
	if !s[p] {
		return "", httperr.ErrBusiness("unknown_page")
	}
	return p, nil
}

func (p Page) IsEntry() bool {
	return p == Index
}

// Decision is the outcome of the bootstrap state machine.
type Decision struct {
	Redirect Page
	Init     Page
}

func (d Decision) IsRedirect() bool {
	return d.Redirect != ""
}

// Resolve decides what to do when a page is opened.
func Resolve(authenticated bool, p Page) Decision {
	switch {
	case !authenticated && !p.IsEntry():
		return Decision{Redirect: Index}
	case authenticated && p.IsEntry():
		return Decision{Redirect: Landing}
	default:
		return Decision{Init: p}
	}
}
