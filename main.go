package main

import "hubsum/cmd"

func main() {
	cmd.Execute()
}
