package main

import "github.com/KaramelBytes/gdpcov-cli/cmd"

func main() {
	cmd.Execute()
}
