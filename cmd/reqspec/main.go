package main

import "reqspec/internal/cli"

func main() {
	cli.Execute()
}
