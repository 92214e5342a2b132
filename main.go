package main

import "payplan/cmd"

func main() {
	cmd.Execute()
}
