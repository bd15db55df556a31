package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/passbox/cmd"
	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// An aborted prompt already said everything there is to say.
		if !errors.Is(err, pberrors.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		}
		os.Exit(1)
	}
}
