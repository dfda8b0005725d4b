package main

import "github.com/Saucer42/hockey-schedule-ical/internal/cli"

func main() {
	cli.Execute()
}
