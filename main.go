package main

import "github.com/radiofrance/robotkw/cmd"

func main() {
	cmd.Execute()
}
