package main

import "github.com/byteweave/byteweave/cmd/byteweave/cmd"

func main() {
	cmd.Execute()
}
