package main

import "github.com/drinkwise/bac-cli/cmd/bac"

func main() {
	bac.Execute()
}
