package main

import "github.com/earthtraveller1/tictactoe/cmd"

func main() {
	cmd.Execute()
}
