package main

import "bitbuddy/internal/cli"

func main() {
	cli.Execute()
}
