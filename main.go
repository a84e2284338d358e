package main

import "cinepass-cli/cmd"

func main() {
	cmd.Execute()
}
