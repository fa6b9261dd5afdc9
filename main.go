package main

import "github.com/wfind/wfind/cmd"

func main() {
	cmd.Execute()
}
