package main

import (
	"github.com/mchmarny/gunghap/pkg/cli"
)

func main() {
	cli.Execute()
}
