package main

import "github.com/mrhapile/distpack/internal/cli"

func main() {
	cli.Execute()
}
