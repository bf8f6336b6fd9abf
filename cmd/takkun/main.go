package main

import "github.com/campaul/takkun/internal/cli"

func main() {
	cli.Execute()
}
