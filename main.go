package main

import "vkhello/internal/cli"

func main() {
	cli.Execute()
}
