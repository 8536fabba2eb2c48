package main

import "github.com/ytget/infobar/cmd"

func main() {
	cmd.Execute()
}
