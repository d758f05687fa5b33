package main

import "github.com/bnbowman/gffio/cmd/gffio/cmd"

func main() {
	cmd.Execute()
}
