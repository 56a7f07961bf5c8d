package main

import "github.com/avren/desktop-agent/cmd"

func main() {
	cmd.Execute()
}
