// Package main provides the entry point for VisionCraft, a terminal sign in
// and sign up form switcher built on Bubbletea.
//
// Usage:
//
//	visioncraft [flags]
package main

import "github.com/riordanpawley/visioncraft/internal/cli"

func main() {
	cli.Execute()
}
