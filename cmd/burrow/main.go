// Command burrow computes the minimum energy needed to sort an amphipod burrow.
//
//	burrow solve input.txt
//	burrow solve --unfold --path < input.txt
//	burrow serve --addr :8080
package main

func main() {
	Execute()
}
