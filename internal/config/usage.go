package config

import (
	"flag"
	"fmt"
)

// usageGroups orders the flags in the help output.
var usageGroups = []struct {
	title string
	flags []string
}{
	{"Evaluation", []string{"op", "a", "b", "m", "timeout"}},
	{"Self-check", []string{"self-check", "samples", "bits", "seed", "workers", "oracle"}},
	{"Output", []string{"quiet", "details", "output", "metrics", "log-level", "no-color"}},
}

func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s -op <operation> -a <hex> [-b <hex>] [-m <hex>] [options]\n", fs.Name())
		fmt.Fprintf(out, "       %s -self-check [-samples N] [-bits N] [options]\n", fs.Name())
		for _, g := range usageGroups {
			fmt.Fprintf(out, "\n%s:\n", g.title)
			for _, name := range g.flags {
				f := fs.Lookup(name)
				if f == nil {
					continue
				}
				def := ""
				if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
					def = fmt.Sprintf(" (default %s)", f.DefValue)
				}
				fmt.Fprintf(out, "  -%-12s %s%s\n", f.Name, f.Usage, def)
			}
		}
		fmt.Fprintf(out, "\nEvery flag can also be set through an environment variable, e.g. %sTIMEOUT=30s.\n", EnvPrefix)
	}
}
