//go:build !prod
// +build !prod

package cmd

var version = "dev"
