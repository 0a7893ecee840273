package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/suparena/tablestore"
	"github.com/suparena/tablestore/filter"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	orFlag      = flag.Bool("or", false, "Combine predicates with or instead of and")
	negateFlag  = flag.Bool("not", false, "Negate the combined filter")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <field> <op> <value> [<field> <op> <value> ...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Ops: lt le gt ge eq ne. Values parse as int64, float or bool before falling back to string.")
	flag.PrintDefaults()
}

func main() {
	// Parse flags early to catch version flag
	flag.Usage = usage
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := tablestore.GetVersionInfo()
		fmt.Printf("tablestore filtercheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 || len(args)%3 != 0 {
		usage()
		os.Exit(2)
	}

	combined := filter.NoFilter()
	for i := 0; i < len(args); i += 3 {
		term := filter.Where(args[i], filter.ComparisonOp(args[i+1]), parseValue(args[i+2]))
		if *orFlag {
			combined = filter.Or(combined, term)
		} else {
			combined = filter.And(combined, term)
		}
	}
	if *negateFlag {
		combined = filter.Not(combined)
	}

	query, ok := filter.Compile(combined)
	if !ok {
		fmt.Println("(no filter)")
		return
	}
	fmt.Println(query)
}

// parseValue guesses the literal type the way the query grammar distinguishes
// them: int64, then float, then bool, then plain string.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
