package main

import (
	"github.com/tourmate/tourmate/internal/cli"
)

func main() {
	cli.Execute()
}
