package main

import "fiber-extras/cmd"

func main() {
	cmd.Execute()
}
