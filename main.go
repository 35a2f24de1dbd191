package main

import "github.com/skillpath/roadmapper/cmd"

func main() {
	cmd.Execute()
}
