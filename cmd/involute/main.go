// Package main provides the involute CLI for ISO 4156 spline calculations.
package main

func main() {
	Execute()
}
