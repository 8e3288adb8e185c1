// Command triez is a small demo driver over the trie package: it reads
// a line-oriented script of operations, applies them against a single
// in-memory trie, and prints results to stdout. There is no persisted
// state between runs; the trie package itself never touches disk.
//
// Script grammar, one operation per line:
//
//	set KEY VALUE
//	get KEY
//	contains KEY
//	remove KEY
//	len
//	nodecount
//	suffixes [PREFIX]
//	prefixes QUERY
//	corrections QUERY MAX_DISTANCE
//	load FILE
//
// Blank lines and lines starting with # are ignored.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Zubayear/triez/trie"
)

func run(ctx *cli.Context) error {
	var in *os.File
	if path := ctx.String("script"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "-script")
		}
		defer f.Close()
		in = f
	} else {
		in = os.Stdin
	}

	t := trie.New[string]()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := execute(t, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", line, err)
		}
	}
	return scanner.Err()
}

func execute(t *trie.Trie[string], line string) error {
	fields := strings.Fields(line)
	verb, args := fields[0], fields[1:]

	switch verb {
	case "set":
		if len(args) < 2 {
			return errors.New("usage: set KEY VALUE")
		}
		return t.Insert(args[0], strings.Join(args[1:], " "))
	case "get":
		v, err := t.Lookup(arg(args, 0))
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "contains":
		ok, err := t.Contains(arg(args, 0))
		if err != nil {
			return err
		}
		fmt.Println(ok)
	case "remove":
		return t.Remove(arg(args, 0))
	case "len":
		fmt.Println(t.Len())
	case "nodecount":
		fmt.Println(t.NodeCount())
	case "suffixes":
		keys, err := t.Suffixes(arg(args, 0))
		if err != nil {
			return err
		}
		printKeys(keys)
	case "prefixes":
		keys, err := t.Prefixes(arg(args, 0))
		if err != nil {
			return err
		}
		printKeys(keys)
	case "corrections":
		if len(args) < 2 {
			return errors.New("usage: corrections QUERY MAX_DISTANCE")
		}
		d, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrap(err, "MAX_DISTANCE")
		}
		keys, err := t.Corrections(args[0], d)
		if err != nil {
			return err
		}
		printKeys(keys)
	case "load":
		return loadFile(t, arg(args, 0))
	default:
		return errors.Errorf("unknown command %q", verb)
	}
	return nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func printKeys(keys []string) {
	for _, k := range keys {
		fmt.Println(k)
	}
}

func loadFile(t *trie.Trie[string], path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}
		if err := t.Insert(key, key); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func main() {
	app := cli.App{
		Name:  "triez",
		Usage: "drive a trie.Trie from a line-oriented script",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "script",
				Usage: "path to a script file (default: read stdin)",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
