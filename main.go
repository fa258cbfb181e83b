package main

import "github.com/simidle/simidle/cmd"

func main() {
	cmd.Execute()
}
