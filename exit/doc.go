// Package exit reports a program's final error and terminates the process.
//
// LogErrors is meant to be the last call in main:
//
//	func main() {
//	    exit.LogErrors(run())
//	}
//
// A nil error exits with status 0 and prints nothing. Otherwise the cause chain is
// written to standard error, outermost first, and the process exits with status 1:
//
//	error: unable to load config (/etc/app.yaml)
//	 caused by: open /etc/app.yaml: no such file or directory
//
// The leading "error:" can be emphasized with color through WithColor. Colors never
// change the text or the exit status.
package exit
