package main

import "github.com/nmelnik/subburn/internal/cli"

func main() {
	cli.Main()
}
