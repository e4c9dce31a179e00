// Package main demonstrates usage of the scg-failure packages.
//
//	scg-demo cat ./notes.txt
//	scg-demo port ./port.txt
//	SCG_COLOR=always scg-demo env DATABASE_URL
package main

import (
	"github.com/next-trace/scg-failure/exit"
)

func main() {
	exit.LogErrors(newRootCmd().Execute())
}
