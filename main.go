/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "s3idx/cmd"

func main() {
	cmd.Execute()
}
