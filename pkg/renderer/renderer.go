// Package renderer defines the interface shared by console hosts.
package renderer

// Version and Commit are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

// Renderer hosts a console: it owns the input source and the display and
// runs until the user quits.
// Implementations include a terminal host and an Ebiten window.
type Renderer interface {
	// Init prepares the display (fonts, window, raw terminal mode).
	Init() error

	// Run blocks in the host's event loop. A user quit returns nil.
	Run() error
}
