package main

import "github.com/sensepost/wiiload/cmd"

func main() {
	cmd.Execute()
}
