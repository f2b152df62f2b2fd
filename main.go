package main

import "github.com/iksnae/chatstat/cmd"

func main() {
	cmd.Execute()
}
