package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`   __               _     `,
	`  / _| ___ _ __ _ __(_)___ `,
	` | |_ / _ \ '__| '__| / __|`,
	` |  _|  __/ |  | |  | \__ \`,
	` |_|  \___|_|  |_|  |_|___/`,
}

// Rust-ish gradient, dark orange to red
var bannerColors = []string{"#f4a261", "#ee8959", "#e76f51", "#d8573c", "#c0392b"}

// Banner returns the ASCII art header for the tour, coloured for profile p.
// With termenv.Ascii it is plain text.
func Banner(p termenv.Profile, version string) string {
	var sb strings.Builder
	for i, line := range bannerLines {
		sb.WriteString(p.String(line).Foreground(p.Color(bannerColors[i])).String())
		sb.WriteString("\n")
	}
	if version != "" {
		sb.WriteString(p.String("  " + version).Faint().String())
		sb.WriteString("\n")
	}
	return sb.String()
}
