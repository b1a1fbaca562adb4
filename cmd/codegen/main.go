package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/watchparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed arity facade for watch",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest arity to generate",
				Value: 16,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for watch started!")
	defer func() {
		log.Printf("Codegen for watch finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	contents := templates.ArityGen(int(count))
	return os.WriteFile("watch/arity.go", []byte(contents), 0644)
}
