package main

import "checkatron/cmd"

func main() {
	cmd.Execute()
}
