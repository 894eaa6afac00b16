package main

import "github.com/PolarWolf314/seedxor/cmd"

func main() {
	cmd.Execute()
}
