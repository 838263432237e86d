// Package main is the entry point for the goldrun CLI.
package main

import "github.com/mouse-blink/goldrun/cmd"

func main() {
	cmd.Execute()
}
