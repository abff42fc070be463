package main

import "credsim/cmd"

func main() {
	cmd.Execute()
}
