// Package main provides the railcat CLI application.
package main

import "github.com/railcat/railcat/cmd"

func main() {
	cmd.Execute()
}
