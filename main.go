package main

import "lecturectl/cmd"

func main() {
	cmd.Execute()
}
