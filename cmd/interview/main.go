package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/cixtor/interview/cmd/interview/cmd"
)

func main() {
	cmd.Execute()
}
