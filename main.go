package main

import "github.com/wassima-azzouzi/data-agent/cmd"

func main() {
	cmd.Execute()
}
