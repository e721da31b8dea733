// Command uciengine is a thin UCI command-loop driver over the engine
// package: it owns stdin/stdout and option parsing, delegates every chess
// decision to *engine.Engine.
//
// Grounded on
// _examples/easychessanimations-zurichess/zurichess/main.go (bufio.Reader
// line loop over stdin, one Execute call per line, quit sentinel error
// ends the loop).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"bitbucket.org/zurichess/corechess/config"
)

const configPath = "engine.toml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Println("info string could not read", configPath, ":", err)
	}
	cfg.ApplyZobristSeed()

	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	u := newUCI(cfg)
	bio := bufio.NewReader(os.Stdin)
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			break
		}
		if err := u.execute(string(line)); err != nil {
			if err == errQuit {
				break
			}
			fmt.Fprintf(os.Stdout, "info string error: %v\n", err)
		}
	}
}
