package main

import "github.com/zjrosen/a11ypanel/cmd"

func main() {
	cmd.Execute()
}
