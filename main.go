package main

import "garment-stock/cmd"

func main() {
	cmd.Execute()
}
