package main

import "element-attributes/cmd"

func main() {
	cmd.Execute()
}
