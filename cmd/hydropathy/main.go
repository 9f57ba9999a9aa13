// cmd/hydropathy/main.go
package main

import (
	"hydropathy/internal/app"
	"hydropathy/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
