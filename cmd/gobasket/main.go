package main

import "github.com/dbsmedya/gobasket/cmd/gobasket/cmd"

func main() {
	cmd.Execute()
}
