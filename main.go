package main

import "github.com/chrisdamba/foodadmin/cmd"

func main() {
	cmd.Execute()
}
