package main

import "countries-api/cmd"

func main() {
	cmd.Execute()
}
