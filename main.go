package main

import "github.com/wilterwhite/ingeo-structures-sub002/cmd"

func main() {
	cmd.Execute()
}
