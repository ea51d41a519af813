package main

import "github.com/etiology/BuddySuite/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
