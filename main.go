package main

import "lexis/cmd"

func main() {
	cmd.Execute()
}
