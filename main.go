package main

import "adoptme-backend/cmd"

func main() {
	cmd.Run()
}
