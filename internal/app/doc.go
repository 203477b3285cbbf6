// Package app provides the application logic behind the CLI commands.
// It builds the Musixmatch client and the lyrics service from the configuration,
// runs the requested operation and renders the results.
package app
