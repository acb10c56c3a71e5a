package main

import "github.com/kamal-hamza/msgx/cmd"

func main() {
	cmd.Execute()
}
