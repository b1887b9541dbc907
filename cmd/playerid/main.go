package main

import "playerid/internal/cli"

func main() {
	cli.Execute()
}
