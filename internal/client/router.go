package client

import "strings"

const (
	ViewLogin    = "/"
	ViewSignup   = "/signup"
	ViewProjects = "/project"
)

// Resolve returns the view to show for path under the given session
// state. While the state is still being checked it returns "".
func Resolve(path string, state State) string {
	if state == StateChecking {
		return ""
	}
	authenticated := state == StateAuthenticated

	switch {
	case path == ViewLogin || path == ViewSignup:
		if authenticated {
			return ViewProjects
		}
		return path
	case path == ViewProjects || isProjectDetail(path):
		if !authenticated {
			return ViewLogin
		}
		return path
	default:
		return ViewLogin
	}
}

func isProjectDetail(path string) bool {
	id, ok := strings.CutPrefix(path, ViewProjects+"/")
	return ok && id != "" && !strings.Contains(id, "/")
}
