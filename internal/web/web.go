// Package web holds the browser client: the HTML shell returned for every
// non-POST request and the static bundle it loads.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed shell.html
var shellHTML string

//go:embed static
var staticFS embed.FS

var shellTmpl = template.Must(template.New("shell").Parse(shellHTML))

// ShellData fills the HTML shell.
type ShellData struct {
	Title     string
	BundleURL string
	StyleURL  string
}

func DefaultShellData() ShellData {
	return ShellData{
		Title:     "Advanced AI",
		BundleURL: "/static/app.js",
		StyleURL:  "/static/style.css",
	}
}

// RenderShell writes the HTML shell to w.
func RenderShell(w io.Writer, data ShellData) error {
	return shellTmpl.Execute(w, data)
}

// Static returns the bundle file system rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
