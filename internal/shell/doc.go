// Package shell implements the numbered menu that drives a text buffer.
//
// The shell reads one selection per line, asks for the arguments the
// selected command needs, calls the buffer and prints the outcome. Input
// that is not a number where one is required is reported as invalid input
// and the buffer is not called. No failure ends the session; only Exit or
// the end of input does.
package shell
