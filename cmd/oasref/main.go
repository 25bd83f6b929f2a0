package main

import "oasref/internal/cli"

func main() {
	cli.Execute()
}
