package main

import "github.com/vfg2006/creative-performance-api/internal/cli"

func main() {
	cli.Execute()
}
