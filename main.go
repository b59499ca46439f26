package main

import cmd "github.com/mwiater/gollamadock/cmd/gollamadock"

// main starts the gollamadock CLI application by delegating to the
// cobra root command defined in the gollamadock package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
