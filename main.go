package main

import "github.com/jmehdipour/risk-scoring/cmd"

func main() {
	cmd.Execute()
}
