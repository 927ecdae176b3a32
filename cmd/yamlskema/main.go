package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	yamlskema "github.com/reoring/yamlskema"
	"github.com/reoring/yamlskema/source/jsonsource"
	"github.com/reoring/yamlskema/source/yamlsource"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		os.Exit(validateCmd(os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "yamlskema CLI\n\nUsage:\n  yamlskema validate -schema schema.yaml [-schema more.yaml] -uri URI file.yaml [file...]\n\nNotes:\n  - Schemas join the context in argument order; cross-schema references\n    resolve at validation time, so declaration order does not matter.\n  - Files ending in .json parse as JSON, everything else as YAML.")
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var errorText = color.New(color.FgRed)

func report(msg string) {
	errorText.Fprint(os.Stderr, msg)
}

func validateCmd(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemas stringList
	var uri string
	fs.Var(&schemas, "schema", "schema file to include in the context (repeatable)")
	fs.StringVar(&uri, "uri", "", "URI of the schema to validate the files against")
	_ = fs.Parse(args)
	files := fs.Args()

	if len(schemas) == 0 {
		fmt.Fprintln(os.Stderr, "no schemas supplied, see the -schema option for information")
		return 2
	}
	if uri == "" {
		fmt.Fprintln(os.Stderr, "no schema uri supplied, see the -uri option for information")
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no files to validate were supplied, use -h for more information")
		return 2
	}

	var docs []any
	for _, name := range schemas {
		loaded, err := loadFile(name)
		if err != nil {
			report(err.Error() + "\n")
			return 1
		}
		docs = append(docs, loaded...)
	}
	ctx, err := yamlskema.NewContext(docs...)
	if err != nil {
		report(err.Error())
		return 1
	}
	schema, ok := ctx.Schema(uri)
	if !ok {
		report(fmt.Sprintf("schema referenced by uri '%s' not found in context\n", uri))
		return 1
	}

	failed := false
	for _, name := range files {
		loaded, err := loadFile(name)
		if err != nil {
			report(err.Error() + "\n")
			failed = true
			continue
		}
		for _, doc := range loaded {
			if verr := schema.Validate(ctx, doc); verr != nil {
				report(fmt.Sprintf("%s:\n%s", name, verr.Error()))
				failed = true
			}
		}
	}
	if failed {
		return 1
	}
	fmt.Println("all files validated successfully!")
	return 0
}

func loadFile(name string) ([]any, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", name, err)
	}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		doc, err := jsonsource.Load(data)
		if err != nil {
			return nil, fmt.Errorf("could not parse file %s: %w", name, err)
		}
		return []any{doc}, nil
	}
	docs, err := yamlsource.Load(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse file %s: %w", name, err)
	}
	return docs, nil
}
