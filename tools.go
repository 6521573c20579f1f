//go:build tools

package main

// Pins the swagger codegen used to regenerate docs/ from the controller annotations.
import (
	_ "github.com/swaggo/swag"
)
