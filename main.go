package main

import "github.com/royberris/GuitarTabToPiano/cmd"

func main() {
	cmd.Execute()
}
