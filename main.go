package main

import "gpa-tracker/cmd"

func main() {
	cmd.Execute()
}
