// Command ingraph is a single executable exposing the library's
// enumeration, canonicalization, subgraph-matching and
// counterexample-seeking operations as subcommands. Dispatch is a raw
// switch on os.Args plus per-subcommand flag.FlagSet, rather than pulling
// in a CLI framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/canon"
	"github.com/galenhuntington/ingraphs/enumerate"
	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/ioformat"
	"github.com/galenhuntington/ingraphs/progress"
	"github.com/galenhuntington/ingraphs/seeker"
	"github.com/galenhuntington/ingraphs/subiso"
)

// Exit codes: 0 success, 2 argument error, 1 runtime failure.
const (
	exitOK    = 0
	exitUsage = 2
	exitFail  = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ingraph <command> [args...]")
		return exitUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "enumerate":
		return cmdEnumerate(rest)
	case "enumerate-filter":
		return cmdEnumerateFilter(rest)
	case "enumerate-middle":
		return cmdEnumerateMiddle(rest)
	case "retract":
		return cmdRetract(rest)
	case "extend":
		return cmdExtend(rest)
	case "stats":
		return cmdStats(rest)
	case "misses":
		return cmdMisses(rest)
	case "ingraph-scan":
		return cmdIngraphScan(rest)
	case "ingraph-seek":
		return cmdIngraphSeek(rest)
	case "ingraph-check":
		return cmdIngraphCheck(rest)
	case "filter":
		return cmdFilter(rest)
	case "info":
		return cmdInfo(rest)
	case "successors":
		return cmdSuccessors(rest)
	case "is-subgraph":
		return cmdIsSubgraph(rest)
	case "complement":
		return cmdComplement(rest)
	default:
		fmt.Fprintf(os.Stderr, "ingraph: unknown command %q\n", cmd)
		return exitUsage
	}
}

func usageErr(format string, a ...any) int {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	return exitUsage
}

func runErr(format string, a ...any) int {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	return exitFail
}

func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 16 {
		return 0, fmt.Errorf("order must be an integer in [0,16], got %q", s)
	}
	return n, nil
}

func allGraphsPath(size int) string {
	return fmt.Sprintf("output/all%d.txt", size)
}

func showBitwords(ws []bitword.Word) {
	var sb strings.Builder
	for i, w := range ws {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Decimal())
	}
	fmt.Println(sb.String())
}

func cmdEnumerate(args []string) int {
	if len(args) != 1 {
		return usageErr("usage: enumerate <n>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("enumerate: %v", err)
	}
	enumerate.Enumerate(n, func(bn bitword.Word) { fmt.Println(bn.Decimal()) })
	return exitOK
}

func cmdEnumerateFilter(args []string) int {
	if len(args) != 3 {
		return usageErr("usage: enumerate-filter <n> <min> <max>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("enumerate-filter: %v", err)
	}
	lo, err1 := strconv.Atoi(args[1])
	hi, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil {
		return usageErr("enumerate-filter: min/max must be integers")
	}
	enumerate.EnumerateFilter(n, lo, hi, func(bn bitword.Word) { fmt.Println(bn.Decimal()) })
	return exitOK
}

func cmdEnumerateMiddle(args []string) int {
	if len(args) != 1 {
		return usageErr("usage: enumerate-middle <n>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("enumerate-middle: %v", err)
	}
	print := func(bn bitword.Word) { fmt.Println(bn.Decimal()) }
	tri := bitword.Triangle(n)
	if tri%2 == 0 {
		enumerate.EnumerateMiddle(n, print)
	} else {
		half := tri / 2
		enumerate.EnumerateFilter(n, half, half, print)
	}
	return exitOK
}

func cmdRetract(args []string) int {
	if len(args) != 1 {
		return usageErr("usage: retract <bits>")
	}
	bits, err := bitword.ParseDecimal(args[0])
	if err != nil {
		return usageErr("retract: %v", err)
	}
	gr := graph.InferGraph(bits)
	showBitwords(seeker.Bump(gr, false))
	return exitOK
}

func cmdExtend(args []string) int {
	if len(args) != 2 {
		return usageErr("usage: extend <n> <bits>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("extend: %v", err)
	}
	bits, err := bitword.ParseDecimal(args[1])
	if err != nil {
		return usageErr("extend: %v", err)
	}
	gr := graph.FromBits(n, bits)
	showBitwords(seeker.Bump(gr, true))
	return exitOK
}

func cmdStats(args []string) int {
	if len(args) != 1 {
		return usageErr("usage: stats <path>")
	}
	const maxSize = 16
	all, err := ioformat.ReadGraphs(args[0])
	if err != nil {
		return runErr("stats: %v", err)
	}
	counts := make([]int, bitword.Triangle(maxSize)+1)
	for _, bn := range all {
		counts[bn.Popcount()]++
	}
	for i, c := range counts {
		if c > 0 {
			fmt.Printf("%3d %d\n", i, c)
		}
	}
	return exitOK
}

func missCounts(gr graph.Graph) (modComplementSym, modSym, labelled int, err error) {
	all, err := ioformat.ReadGraphs(allGraphsPath(gr.Size()))
	if err != nil {
		return 0, 0, 0, err
	}
	tri := bitword.Triangle(gr.Size())
	hasHalf := tri%2 == 0
	half := tri / 2
	fac := factorial(gr.Size())
	for _, bits := range subiso.Noncovers(all, gr) {
		gr1 := graph.FromBits(gr.Size(), bits)
		syms := fac / gr1.CountSymmetries()
		if hasHalf && gr1.EdgeCount() == half {
			if subiso.IsSubgraphIso(gr1, gr1.Complement()) {
				modComplementSym += 2
			} else {
				modComplementSym++
			}
			modSym++
			labelled += syms
		} else {
			modComplementSym += 2
			modSym++
			labelled += 2 * syms
		}
	}
	modComplementSym /= 2
	return
}

func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}

func cmdMisses(args []string) int {
	if len(args) < 2 {
		return usageErr("usage: misses <n> <bits...>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("misses: %v", err)
	}
	for _, a := range args[1:] {
		bits, err := bitword.ParseDecimal(a)
		if err != nil {
			return usageErr("misses: %v", err)
		}
		gr := graph.FromBits(n, bits)
		c0, c1, c2, err := missCounts(gr)
		if err != nil {
			return runErr("misses: %v", err)
		}
		fmt.Printf("%s,%d,%d,%d,%s\n", gr.Bits().Decimal(), c0, c1, c2, gr)
	}
	return exitOK
}

func cmdIngraphScan(args []string) int {
	if len(args) != 2 {
		return usageErr("usage: ingraph-scan <n> <path>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("ingraph-scan: %v", err)
	}
	all, err := ioformat.ReadGraphs(allGraphsPath(n))
	if err != nil {
		return runErr("ingraph-scan: %v", err)
	}
	pool, err := ioformat.ReadGraphs(args[1])
	if err != nil {
		return runErr("ingraph-scan: %v", err)
	}
	var counterexamples []bitword.Word
	tick := progress.New()
	for i, bits := range pool {
		gr := graph.FromBits(n, bits)
		ec := gr.EdgeCount()
		tick.Tick(func() string {
			return fmt.Sprintf("%d %d (%s)", i, len(counterexamples), bits.Decimal())
		})
		var counter string
		if c := subiso.Noncovers(counterexamples, gr); len(c) > 0 {
			counter = c[0].Decimal()
		} else if c := subiso.Noncovers(all, gr); len(c) > 0 {
			counterexamples = append(counterexamples, c[0])
			counter = c[0].Decimal()
		}
		fmt.Printf("%s,%s,%d,%s,%s\n", bits.Decimal(), gr, ec, counter, ioformat.Timestamp())
	}
	return exitOK
}

func cmdIngraphSeek(args []string) int {
	fs := flag.NewFlagSet("ingraph-seek", flag.ContinueOnError)
	bailout := fs.Int("bailout", -1, "bail out after this many canonical candidates")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	pos := fs.Args()
	if len(pos) != 2 {
		return usageErr("usage: ingraph-seek <n> <path> [--bailout K]")
	}
	n, err := parseSize(pos[0])
	if err != nil {
		return usageErr("ingraph-seek: %v", err)
	}
	limit := *bailout
	if limit < 0 {
		limit = int(^uint(0) >> 1)
	}
	pool, err := ioformat.ReadGraphs(pos[1])
	if err != nil {
		return runErr("ingraph-seek: %v", err)
	}

	var counterexamples []bitword.Word
	tick := progress.New()
	for i, bits := range pool {
		gr := graph.FromBits(n, bits)
		ec := gr.EdgeCount()
		tick.Tick(func() string {
			return fmt.Sprintf("%d %d (%s)", i, len(counterexamples), bits.Decimal())
		})

		subSorted := subiso.BuildSortedRow(gr)
		var counter string
		found := false
		for j := len(counterexamples) - 1; j >= 0; j-- {
			sup := graph.FromBits(n, counterexamples[j])
			if !subiso.IngraphCheck(sup, subSorted, gr) {
				counterexamples = append(counterexamples[:j], counterexamples[j+1:]...)
				counterexamples = append(counterexamples, sup.Bits())
				counter = sup.Bits().Decimal()
				found = true
				break
			}
		}
		visited := 0
		if !found {
			witness, ok, v := seeker.Seek(gr, limit)
			visited = v
			if ok {
				counterexamples = append(counterexamples, witness.Bits())
				counter = witness.Bits().Decimal()
			}
		}
		fmt.Printf("%s,%s,%d,%s,%d,%s\n", bits.Decimal(), gr, ec, counter, visited, ioformat.Timestamp())
	}
	return exitOK
}

func cmdIngraphCheck(args []string) int {
	if len(args) != 3 {
		return usageErr("usage: ingraph-check <n> <bits> <path>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("ingraph-check: %v", err)
	}
	bits, err := bitword.ParseDecimal(args[1])
	if err != nil {
		return usageErr("ingraph-check: %v", err)
	}
	pool, err := ioformat.ReadGraphs(args[2])
	if err != nil {
		return runErr("ingraph-check: %v", err)
	}
	gr := graph.FromBits(n, bits)
	subSorted := subiso.BuildSortedRow(gr)
	var witness *graph.Graph
	for _, supBits := range pool {
		sup := graph.FromBits(n, supBits)
		if !subiso.IngraphCheck(sup, subSorted, gr) {
			witness = &sup
			break
		}
	}
	if witness == nil {
		fmt.Printf("%s %s none\n", bits.Decimal(), gr)
	} else {
		fmt.Printf("%s %s %s %s\n", bits.Decimal(), gr, witness.Bits().Decimal(), witness)
	}
	return exitOK
}

func cmdFilter(args []string) int {
	if len(args) != 3 {
		return usageErr("usage: filter <min> <max> <path>")
	}
	lo, err1 := strconv.Atoi(args[0])
	hi, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return usageErr("filter: min/max must be integers")
	}
	all, err := ioformat.ReadGraphs(args[2])
	if err != nil {
		return runErr("filter: %v", err)
	}
	for _, bn := range all {
		ct := bn.Popcount()
		if ct >= lo && ct <= hi {
			fmt.Printf("%s,%d\n", bn.Decimal(), ct)
		}
	}
	return exitOK
}

func cmdInfo(args []string) int {
	if len(args) != 2 {
		return usageErr("usage: info <n> <bits>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("info: %v", err)
	}
	bits, err := bitword.ParseDecimal(args[1])
	if err != nil {
		return usageErr("info: %v", err)
	}
	gr := graph.FromBits(n, bits)
	row := subiso.BuildSortedRow(gr)
	var rowParts []string
	for _, vd := range row {
		rowParts = append(rowParts, fmt.Sprintf("(%d,%d)", vd.Degree, vd.Vertex))
	}
	fmt.Printf("%s %s (%d) %s syms:%d degree_row:[%s]\n",
		bits.Decimal(), gr, bits.Popcount(), gr.ShowBits(), gr.CountSymmetries(), strings.Join(rowParts, " "))
	return exitOK
}

func cmdSuccessors(args []string) int {
	fs := flag.NewFlagSet("successors", flag.ContinueOnError)
	maxStr := fs.String("max", "", "maximum bitword scanned")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	pos := fs.Args()
	if len(pos) != 2 {
		return usageErr("usage: successors <n> <path> [--max M]")
	}
	n, err := parseSize(pos[0])
	if err != nil {
		return usageErr("successors: %v", err)
	}
	maxVal := bitword.Low(bitword.Triangle(16))
	if *maxStr != "" {
		maxVal, err = bitword.ParseDecimal(*maxStr)
		if err != nil {
			return usageErr("successors: %v", err)
		}
	}
	pool, err := ioformat.ReadGraphs(pos[1])
	if err != nil {
		return runErr("successors: %v", err)
	}
	poolSet := make(map[bitword.Word]struct{}, len(pool))
	for _, b := range pool {
		poolSet[b] = struct{}{}
	}
	extendSet := make(map[bitword.Word]struct{})
	for _, b := range pool {
		for _, e := range seeker.Bump(graph.FromBits(n, b), true) {
			extendSet[e] = struct{}{}
		}
	}
	extends := make([]bitword.Word, 0, len(extendSet))
	for w := range extendSet {
		extends = append(extends, w)
	}
	sort.Slice(extends, func(i, j int) bool { return extends[i].Less(extends[j]) })

	for _, g := range extends {
		rets := seeker.Bump(graph.FromBits(n, g), false)
		var highs, bads []bitword.Word
		for _, g1 := range rets {
			if g1.Cmp(maxVal) > 0 {
				highs = append(highs, g1)
				continue
			}
			if _, ok := poolSet[g1]; !ok {
				bads = append(bads, g1)
			}
		}
		if len(bads) > 0 {
			continue
		}
		badParts := make([]string, len(bads))
		for i, b := range bads {
			badParts[i] = b.Decimal()
		}
		fmt.Printf("%s,%s,[%s],", g.Decimal(), graph.FromBits(n, g), strings.Join(badParts, " "))
		showBitwords(highs)
	}
	return exitOK
}

func parseSubgraphArgs(strs []string) (subs, sups []string, ok bool) {
	target := &subs
	for _, s := range strs {
		if s == "/" {
			target = &sups
			continue
		}
		*target = append(*target, s)
	}
	return subs, sups, len(subs) > 0 && len(sups) > 0
}

func cmdIsSubgraph(args []string) int {
	fs := flag.NewFlagSet("is-subgraph", flag.ContinueOnError)
	table := fs.Bool("table", false, "force table output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	subStrs, supStrs, ok := parseSubgraphArgs(fs.Args())
	if !ok {
		return usageErr("usage: is-subgraph [--table] SUB... / SUP...")
	}
	subs := make([]bitword.Word, len(subStrs))
	sups := make([]bitword.Word, len(supStrs))
	for i, s := range subStrs {
		w, err := bitword.ParseDecimal(s)
		if err != nil {
			return usageErr("is-subgraph: %v", err)
		}
		subs[i] = w
	}
	for i, s := range supStrs {
		w, err := bitword.ParseDecimal(s)
		if err != nil {
			return usageErr("is-subgraph: %v", err)
		}
		sups[i] = w
	}

	useTable := *table || (len(subs) > 1 && len(sups) > 1)
	width := 5
	if useTable {
		for _, w := range append(append([]bitword.Word{}, subs...), sups...) {
			if l := len(w.Decimal()); l > width {
				width = l
			}
		}
		fmt.Printf(" %*s", width, "")
		for _, sup := range sups {
			fmt.Printf(" %*s", width, sup.Decimal())
		}
		fmt.Println()
	}
	for _, sub := range subs {
		if useTable {
			fmt.Printf(" %*s", width, sub.Decimal())
		}
		for _, supBits := range sups {
			size := bitword.InferSize(supBits)
			subG := graph.FromBits(size, sub)
			supG := graph.FromBits(size, supBits)
			fmt.Printf(" %*v", width, subiso.IsSubgraphIso(subG, supG))
		}
		if useTable {
			fmt.Println()
		}
	}
	if !useTable {
		fmt.Println()
	}
	return exitOK
}

func cmdComplement(args []string) int {
	if len(args) != 2 {
		return usageErr("usage: complement <n> <bits>")
	}
	n, err := parseSize(args[0])
	if err != nil {
		return usageErr("complement: %v", err)
	}
	bits, err := bitword.ParseDecimal(args[1])
	if err != nil {
		return usageErr("complement: %v", err)
	}
	gr := canon.ToCanonical(graph.FromBits(n, bits).Complement())
	fmt.Println(gr.Bits().Decimal())
	return exitOK
}
