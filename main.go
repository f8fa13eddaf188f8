package main

import "github.com/hamish-miller/anki/cmd"

func main() {
	cmd.Execute()
}
