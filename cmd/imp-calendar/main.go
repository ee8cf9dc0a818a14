package main

import "github.com/min-cheng/imp-calendar/internal/cli"

func main() {
	cli.Execute()
}
