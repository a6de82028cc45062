package main

import "github.com/taurgis/aegis-docsite/internal/cli"

func main() {
	cli.Execute()
}
