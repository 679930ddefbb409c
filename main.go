package main

import "github.com/ecarehq/ecare_backend/cmd"

func main() {
	cmd.Execute()
}
