package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
	"github.com/reoring/goshape/yamlschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "print":
		printCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "goshape CLI\n\nUsage:\n  goshape print -schema schema.yaml\n  goshape check -schema schema.yaml [doc.json]\n\nNotes:\n  - print emits the compact notation for the schema.\n  - check validates a JSON document (file argument or stdin) against the schema.")
}

// printCmd loads a YAML schema definition and writes its notation to stdout.
func printCmd(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "YAML schema definition file")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	s := loadSchema(schemaPath)
	fmt.Println(s.Stringify())
}

// checkCmd validates a JSON document against a YAML schema definition.
// The document comes from the first positional argument, or stdin when absent.
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	var lang string
	var maxBytes int64
	fs.StringVar(&schemaPath, "schema", "", "YAML schema definition file")
	fs.StringVar(&lang, "lang", "", "message language (en or ja)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "reject documents larger than this many bytes (0 = no limit)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}
	s := loadSchema(schemaPath)

	var data []byte
	var err error
	if fs.NArg() > 0 {
		data, err = os.ReadFile(fs.Arg(0))
		if err != nil {
			fatalf("reading document: %v", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
	}

	// StreamParse enforces the size cap up front, independent of the driver.
	opt := goshape.ParseOpt{MaxBytes: maxBytes}
	v, err := goshape.StreamParse(context.Background(), s, bytes.NewReader(data), opt)
	if err != nil {
		var iss goshape.Issues
		if errors.As(err, &iss) {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
			}
			os.Exit(1)
		}
		fatalf("parse: %v", err)
	}
	fmt.Printf("ok: %v\n", v)
}

func loadSchema(path string) goshape.Schema {
	raw, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	s, err := yamlschema.Load(raw)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	return s
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
