package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Rosetta ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient from teal to blue
	s1 := termenv.String(`                    _   _        `).Foreground(p.Color("#5eead4"))
	s2 := termenv.String(`  _ __ ___  ___ ___| |_| |_ __ _ `).Foreground(p.Color("#2dd4bf"))
	s3 := termenv.String(` | '__/ _ \/ __/ _ \ __| __/ _` + "`" + ` |`).Foreground(p.Color("#22d3ee"))
	s4 := termenv.String(` | | | (_) \__ \  __/ |_| || (_| |`).Foreground(p.Color("#38bdf8"))
	s5 := termenv.String(` |_|  \___/|___/\___|\__|\__\__,_|`).Foreground(p.Color("#60a5fa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
