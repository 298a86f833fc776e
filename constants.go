package main

import "fmt"

// Prefix for envionment variables.
const envconfigPrefix = "STOPWATCH"

// Print a figlet "stopwatch" banner.
// figlet -f small stopwatch | sed -e 's/\\/\\\\/g' -e 's/.*/fmt.Println("&")/'
func banner() {
	fmt.Println("     _                         _      _    ")
	fmt.Println("  __| |_ ___ _ ____ __ ____ _| |_ __| |_  ")
	fmt.Println(" (_-<  _/ _ \\ '_ \\ V  V / _` |  _/ _| ' \\ ")
	fmt.Println(" /__/\\__\\___/ .__/\\_/\\_/\\__,_|\\__\\__|_||_|")
	fmt.Println("            |_|                             ")
	fmt.Println()
}
