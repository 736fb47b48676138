// Package flagx holds small helpers for pre-parsing the command line before
// the main flag set is built.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags listed in names, together with their values.
//
// Two shapes are recognised:
//
//	-c conf.json        flag and value as separate arguments
//	-config=conf.json   flag and value joined by '='
//
// A token following a kept flag is treated as its value unless it begins
// with '-'. Everything else is dropped. The result is never nil.
func FilterArgs(args []string, names []string) []string {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") {
			if name, _, ok := strings.Cut(arg, "="); ok {
				if _, want := keep[name]; want {
					out = append(out, arg)
				}
				continue
			}
		}

		if _, want := keep[arg]; !want {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFile returns the value of -c / -config found in args, or "" when
// neither is present. The last occurrence wins. Unrelated flags are ignored
// so this can run ahead of the real flag set.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
