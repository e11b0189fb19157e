package project

const (
	Name    = "calc-mcp"
	Version = "0.1.0"
)
