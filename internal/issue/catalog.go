// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	UvNotFoundId Id = iota + 1
	UvInstallFailedId
	ProjectRootNotFoundId
	VenvCreateFailedId
	InterpreterNotFoundId
	EntrypointNotFoundId
	DependencyInstallFailedId
)

type (
	// MarkdownMsg is the markdown remediation text for an issue.
	MarkdownMsg string

	// HttpLink is a documentation URL shown under the remediation text.
	HttpLink string

	// Issue is a long-form remediation entry. Unlike ActionableError, which
	// is a one-liner plus bullets, an Issue is a full markdown document
	// rendered with glamour for the cases where the launcher halts and the
	// terminal window is all the user gets to see.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

// Id returns the catalog id of the issue.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown text.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// ExtLinks returns external links that might help the user.
func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the remediation text for terminal display.
func (i *Issue) Render() (string, error) {
	md := string(i.mdMsg)
	if len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.extLinks {
			md += "- " + string(link) + "\n"
		}
	}
	return render(md, "auto")
}

// render is a seam for tests; glamour.Render shells out to terminal
// capability detection which is not deterministic under CI.
var render = glamour.Render

var (
	uvNotFoundIssue = &Issue{
		id: UvNotFoundId,
		mdMsg: `
# The uv package manager was not found

The launcher needs **uv** to create the Python environment and install
dependencies, and it could not find it on your PATH.

## Things you can try
- Install uv manually:
~~~
$ curl -LsSf https://astral.sh/uv/install.sh | sh
~~~
- Or with Homebrew on macOS:
~~~
$ brew install uv
~~~
- Then run the launcher again.`,
		extLinks: []HttpLink{
			"https://docs.astral.sh/uv/getting-started/installation/",
		},
	}

	uvInstallFailedIssue = &Issue{
		id: UvInstallFailedId,
		mdMsg: `
# Automatic uv installation failed

The launcher tried to download and run the uv install script, but the
installation did not complete. This usually means a network problem or a
blocked download.

## Things you can try
- Check your internet connection and retry.
- Install uv manually and run the launcher again:
~~~
$ curl -LsSf https://astral.sh/uv/install.sh | sh
~~~
- If your network requires a proxy, set HTTPS_PROXY before launching.`,
		extLinks: []HttpLink{
			"https://docs.astral.sh/uv/getting-started/installation/",
		},
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter in the virtual environment

The virtual environment exists but does not contain a usable Python
interpreter. It may be half-created or corrupted.

## Things you can try
- Delete the environment directory and run the launcher again; it will be
  recreated from scratch:
~~~
$ rm -rf .venv
~~~`,
	}

	entrypointNotFoundIssue = &Issue{
		id: EntrypointNotFoundId,
		mdMsg: `
# The easySql application was not found

The launcher resolved its project directory but could not find the
application entry point there.

## Things you can try
- Make sure the launcher sits next to the application files (it expects
  the entry point three levels up from a bundled executable, or in its
  own directory otherwise).
- Set an explicit project root in the launcher config file.`,
	}

	catalog = map[Id]*Issue{
		UvNotFoundId:          uvNotFoundIssue,
		UvInstallFailedId:     uvInstallFailedIssue,
		InterpreterNotFoundId: interpreterNotFoundIssue,
		EntrypointNotFoundId:  entrypointNotFoundIssue,
	}
)

// Lookup returns the catalog entry for id, or nil when the id has no
// long-form remediation text.
func Lookup(id Id) *Issue {
	return catalog[id]
}

// Ids returns all catalog ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
