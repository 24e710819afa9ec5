package main

import "github.com/migmedia/planturl/internal/cli"

func main() {
	cli.Execute()
}
