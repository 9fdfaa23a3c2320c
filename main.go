package main

import "github.com/alexiusacademia/gored/cmd"

func main() {
	cmd.Execute()
}
