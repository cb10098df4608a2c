// Package main starts the dropzone query server.
package main

import "flag"

// main is the entrypoint for the dropzone server.
func main() {
	debug := flag.Bool("debug", false, "Log every query and reply")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
