package main

import "github.com/matheuskafuri/campusnews/cmd"

func main() {
	cmd.Execute()
}
