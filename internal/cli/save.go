package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

type saveCmd struct {
	in   string
	data string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "persist a snapshot of a quote file" }
func (*saveCmd) Usage() string {
	return `save -in cotizacion.json [-data dir]:
  Validate the quote and store an immutable snapshot.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "quote JSON file")
	f.StringVar(&c.data, "data", defaultDataDir(), "data directory")
}

func (c *saveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		return fail(fmt.Errorf("save: -in is required"))
	}
	m, err := readQuoteFile(c.in)
	if err != nil {
		return fail(err)
	}
	if err := quote.Validate(m); err != nil {
		return fail(err)
	}

	st, err := openStore(c.data)
	if err != nil {
		return fail(err)
	}
	saved, err := st.Save(ctx, m)
	if err != nil {
		return fail(err)
	}
	fmt.Println(saved.Key)
	return subcommands.ExitSuccess
}
