package main

import "fget/cmd"

func main() {
	cmd.Execute()
}
