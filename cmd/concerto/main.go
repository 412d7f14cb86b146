package main

import "github.com/concerto-events/concerto/internal/cli"

func main() {
	cli.Execute()
}
