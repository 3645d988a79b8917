package main

import "github.com/naka-gawa/git-spy/cmd"

func main() {
	cmd.Execute()
}
