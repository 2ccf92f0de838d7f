// Package terminal inspects the controlling terminal once per run: which
// graphics protocol it speaks and how large its character cells are.
// Callers capture the results into plain values and pass them down, so the
// rest of the program never reads the environment on its own.
package terminal
