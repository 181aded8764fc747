package main

import "github.com/greenvale/tiny-carbon-tracker/cmd"

func main() {
	cmd.Execute()
}
