package main

import "github.com/inovacc/cvehunt/cmd"

func main() {
	cmd.Execute()
}
