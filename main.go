package main

import "github.com/chrisdamba/dronedash/cmd"

func main() {
	cmd.Execute()
}
