package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Command binds one user action on a page to an HTTP route.
type Command struct {
	Page    Page
	Action  string
	Method  string
	Path    string
	Auth    bool
	Handler gin.HandlerFunc
}

type Table []Command

// Register mounts every command; authenticated ones go through protected.
func (t Table) Register(public, protected gin.IRoutes) {
	for _, cmd := range t {
		r := public
		if cmd.Auth {
			r = protected
		}
		r.Handle(cmd.Method, cmd.Path, cmd.Handler)
	}
}

// Lookup finds the command for a page action.
func (t Table) Lookup(p Page, action string) (Command, bool) {
	for _, cmd := range t {
		if cmd.Page == p && cmd.Action == action {
			return cmd, true
		}
	}
	return Command{}, false
}

// Actions lists the page's actions in table order.
func (t Table) Actions(p Page) []string {
	var out []string
	for _, cmd := range t {
		if cmd.Page == p {
			out = append(out, cmd.Action)
		}
	}
	return out
}

func isKnownMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}

// Validate reports the first command with an unusable method or a
// duplicated page action.
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t))
	for _, cmd := range t {
		if !isKnownMethod(cmd.Method) || cmd.Path == "" || cmd.Handler == nil {
			return &InvalidCommandError{Page: cmd.Page, Action: cmd.Action}
		}
		key := string(cmd.Page) + "/" + cmd.Action
		if seen[key] {
			return &InvalidCommandError{Page: cmd.Page, Action: cmd.Action}
		}
		seen[key] = true
	}
	return nil
}

type InvalidCommandError struct {
	Page   Page
	Action string
}

func (e *InvalidCommandError) Error() string {
	return "invalid command " + string(e.Page) + "/" + e.Action
}
