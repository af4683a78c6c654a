package main

import "github.com/gopanchang/jyotish/cmd"

func main() {
	cmd.Execute()
}
