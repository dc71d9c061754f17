package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tt "tinytar"
)

func main() {
	tt.InstallInterruptHandler()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	tt.ResetDefaults()

	if len(args) < 1 {
		showUsage()
		fmt.Println("\nError: No mode specified.")
		return 1
	}

	var mode byte
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "create", "c":
		mode = 'c'
	case "append", "a", "r":
		mode = 'a'
	case "list", "l", "t":
		mode = 'l'
	case "extract", "x":
		mode = 'x'
	case "verify", "v":
		mode = 'v'
	default:
		if len(args) == 1 && !strings.HasPrefix(args[0], "-") {
			// A single bare path lists that archive.
			mode = 'l'
			rest = args[:1]
		} else {
			showUsage()
			fmt.Printf("\nUnknown mode: %v\n", args[0])
			return 1
		}
	}

	flagSet := flag.NewFlagSet("tinytar", flag.ExitOnError)
	verbose := flagSet.Bool("v", false, "verbose logging")
	quiet := flagSet.Bool("q", false, "suppress non-error output")
	progress := flagSet.Bool("progress", true, "show progress bar")
	asJSON := flagSet.Bool("json", false, "list output as JSON")
	sumName := flagSet.String("sum", "", "content digest for verify: crc16|crc32|xxh3|sha256|blake2b|blake3")
	space := flagSet.Bool("space", true, "check free disk space before writing")
	flagSet.Parse(rest)

	tt.Verbose = *verbose
	tt.Quiet = *quiet
	tt.Progress = *progress && !*quiet
	tt.SpaceCheck = *space

	files := flagSet.Args()

	var err error
	switch mode {
	case 'c':
		if len(files) < 2 {
			showUsage()
			fmt.Println("\nError: create needs an archive name and at least one input file.")
			return 1
		}
		inputs, rerr := tt.ResolveInputs(files[1:], files[0])
		if rerr != nil {
			err = rerr
			break
		}
		err = tt.Create(files[0], inputs)
	case 'a':
		if len(files) < 2 {
			showUsage()
			fmt.Println("\nError: append needs an archive name and at least one input file.")
			return 1
		}
		inputs, rerr := tt.ResolveInputs(files[1:], files[0])
		if rerr != nil {
			err = rerr
			break
		}
		err = tt.Append(files[0], inputs)
	case 'l':
		if len(files) != 1 {
			showUsage()
			fmt.Println("\nError: list needs exactly one archive name.")
			return 1
		}
		err = tt.List(os.Stdout, files[0], *asJSON)
	case 'x':
		if len(files) < 1 || len(files) > 2 {
			showUsage()
			fmt.Println("\nError: extract needs an archive name and an optional destination.")
			return 1
		}
		dest := ""
		if len(files) == 2 {
			dest = files[1]
		}
		err = tt.Extract(files[0], dest)
	case 'v':
		if len(files) != 1 {
			showUsage()
			fmt.Println("\nError: verify needs exactly one archive name.")
			return 1
		}
		err = tt.Verify(os.Stdout, files[0], *sumName)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("Usage: tinytar mode [options] archive.tar [input files...] or [destination]")
	fmt.Println("\nModes:")
	fmt.Println("  create  (c)    = Create a new archive. Requires input files")
	fmt.Println("  append  (a|r)  = Append files to an existing archive")
	fmt.Println("  list    (l|t)  = List archive contents")
	fmt.Println("  extract (x)    = Extract all files from archive")
	fmt.Println("  verify  (v)    = Recompute header checksums and report entries")
	fmt.Println("\nA single bare archive path lists it, like: tinytar backup.tar")
	fmt.Println("\nOptions:")
	fmt.Println("  -v              Verbose logging")
	fmt.Println("  -q              Quiet (errors only)")
	fmt.Println("  -progress=false No progress bar")
	fmt.Println("  -json           JSON listing output")
	fmt.Println("  -sum=blake3     Content digests during verify")
	fmt.Println("  -space=false    Skip the free disk space check")
	fmt.Println("")
	fmt.Println("  tinytar create backup.tar notes.txt 'src/*.go'")
	fmt.Println("  tinytar append backup.tar extra.bin")
	fmt.Println("  tinytar extract backup.tar out/")
}
