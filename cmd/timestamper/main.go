package main

import "github.com/mcoot/timestamper/internal/cli"

func main() {
	cli.Execute()
}
