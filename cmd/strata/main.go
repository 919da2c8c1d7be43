// Command strata is a thin CLI over the strata library: sorting, ordered
// lookup, and rose-tree inspection from the shell.
package main

func main() {
	Execute()
}
