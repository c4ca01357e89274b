package main

import "hangman/cli"

func main() {
	cli.Execute()
}
