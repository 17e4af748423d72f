package main

import "github.com/pantrylens/receipt-parser/cmd"

func main() {
	cmd.Execute()
}
