package main

import "github.com/appcircle-io/appcircle-cli/cmd"

func main() {
	cmd.Execute()
}
