package main

import "github.com/devon-mar/linkhdr/cmd"

func main() {
	cmd.Execute()
}
