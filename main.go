package main

import "github.com/sumanthj/resumeforge/cmd"

func main() {
	cmd.Execute()
}
