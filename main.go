/*
Copyright © 2025 Oleg Shokin

This file is the entry point for the musixmatch-client application.
It initializes and executes the root command defined in the cmd package.
*/
package main

import "github.com/oshokin/musixmatch-client/cmd"

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
