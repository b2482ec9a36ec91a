package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type listCmd struct {
	data string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list saved quotes, most recent first" }
func (*listCmd) Usage() string {
	return `list [-data dir]:
  Print every saved quote.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.data, "data", defaultDataDir(), "data directory")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore(c.data)
	if err != nil {
		return fail(err)
	}
	records, err := st.ListAll(ctx)
	if err != nil {
		return fail(err)
	}
	if len(records) == 0 {
		fmt.Println("no hay cotizaciones guardadas")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tCREATED\tDATE\tREFERENCE\tITEMS")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			rec.Key, rec.CreatedAt.Format("2006-01-02 15:04"), rec.Date, rec.Reference, len(rec.Items))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
