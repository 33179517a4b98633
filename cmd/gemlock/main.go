package main

import "gemlock/internal/cli"

func main() {
	cli.Execute()
}
