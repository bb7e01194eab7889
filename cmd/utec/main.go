// cmd/utec/main.go
package main

import (
	"utec/internal/app"
	"utec/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
