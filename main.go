package main

import cmd "github.com/inference-gateway/cheat/cmd"

func main() {
	cmd.Execute()
}
