package main

import (
	"fmt"
	"os"

	"github.com/go-leo/patterns/chain"
	"github.com/go-leo/patterns/chain/access"
	"github.com/go-leo/patterns/internal/logging"
)

// Runs every JSON request given as argument through the access chain and prints the verdicts.
//
//	go run ./chain/cmd '{"user":"egor","role":"admin"}' '{"role":"admin"}'
func main() {
	logger := logging.New("access chain", logging.Cyan)
	h := chain.Decorate[access.Request, access.Result](
		access.NewChain(chain.WithName("access"), chain.WithObserver(func(v chain.Visit) {
			logger.Debugf("%s: link %d terminal=%t", v.Chain, v.Index, v.Terminal)
		})),
		chain.Logging[access.Request, access.Result](logger),
	)

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{
			`{"user": "egor", "role": "admin"}`,
			`{"role": "admin"}`,
			`{"user": "egor", "role": "guest"}`,
		}
	}
	for _, arg := range args {
		req, err := access.ParseRequest([]byte(arg))
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		data, err := access.Check(h, req).JSON()
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	}
}
