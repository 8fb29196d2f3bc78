package main

import "github.com/philipparndt/photodist/cmd"

func main() {
	cmd.Execute()
}
