package registry

import (
	"os/exec"

	"github.com/go-git/go-git/v5"
)

// vcsIntegration pairs a version control integration with the command
// line tool it drives. Git has no tool requirement: the integration is
// in-process.
type vcsIntegration struct {
	name string
	tool string
}

var builtinIntegrations = []vcsIntegration{
	{name: "Git"},
	{name: "Mercurial", tool: "hg"},
	{name: "Subversion", tool: "svn"},
	{name: "Bazaar", tool: "bzr"},
}

// BuiltinVcsSource enumerates the version control integrations compiled
// into the application, filtered to those whose backend is usable.
type BuiltinVcsSource struct {
	lookPath func(string) (string, error)
}

// NewBuiltinVcsSource creates the built-in integration source.
func NewBuiltinVcsSource() *BuiltinVcsSource {
	return &BuiltinVcsSource{lookPath: exec.LookPath}
}

// Enumerate returns the names of the usable built-in integrations.
func (s *BuiltinVcsSource) Enumerate() []string {
	var names []string
	for _, integration := range builtinIntegrations {
		if integration.tool != "" {
			if _, err := s.lookPath(integration.tool); err != nil {
				continue
			}
		}
		names = append(names, integration.name)
	}
	return names
}

// GitWorkspace describes the repository enclosing a directory, if any.
// Shown in the status bar so the user knows the Git integration has
// something to act on.
type GitWorkspace struct {
	Present bool
	Branch  string
}

// DetectGitWorkspace walks up from path looking for a git repository.
func DetectGitWorkspace(path string) GitWorkspace {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return GitWorkspace{}
	}

	ws := GitWorkspace{Present: true}
	if head, err := repo.Head(); err == nil {
		ws.Branch = head.Name().Short()
	}
	return ws
}
