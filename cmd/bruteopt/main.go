// Command bruteopt solves small integer programs by exhaustive enumeration.
//
//	bruteopt solve --verbose
//	bruteopt solve --file problem.yaml --rhs transportation=16
//	bruteopt verify 8 3
//	bruteopt sensitivity --constraint transportation --rhs 16
//	bruteopt digits s225187913 --from 3
//	bruteopt export > product_mix.yaml
//
// Without --file the canonical product-mix instance is used.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
