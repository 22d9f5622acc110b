package main

import "gamedata-manager/cmd"

func main() {
	cmd.Execute()
}
