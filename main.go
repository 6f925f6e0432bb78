package main

import "github.com/present-lee/module-6/cmd"

func main() {
	cmd.Execute()
}
