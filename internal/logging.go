// Package internal holds process setup shared by the commands.
package internal

import (
	"log"
	"os"
)

// InitLogging sends the standard logger to stdout with microsecond
// timestamps, prefixing every message with the command name.
func InitLogging(command string) {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lmsgprefix)
	log.SetPrefix(command + ": ")
}
