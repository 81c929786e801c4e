package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/parse"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

// docFunc maps one input document to an output document. A nil result
// writes nothing.
type docFunc func(doc *ir.Node) (*ir.Node, error)

// eachDoc applies f to every document of every file and writes the results
// to cc.Out. With no files, standard input is read.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f docFunc) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	first := true
	for _, file := range files {
		docs, err := readDocs(cc, file, cfg.fileParseOpts(file)...)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			res, err := f(doc)
			if err != nil {
				return fmt.Errorf("error processing %s document %d: %w", file, i, err)
			}
			if res == nil {
				continue
			}
			if !first {
				if _, err := cc.Out.Write(docSep[1:]); err != nil {
					return fmt.Errorf("error writing separator: %w", err)
				}
			}
			first = false
			if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result of %s document %d: %w", file, i, err)
			}
		}
	}
	return nil
}

func readDocs(cc *cli.Context, file string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	in, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	parts := splitDocs(in)
	res := make([]*ir.Node, 0, len(parts))
	for i, part := range parts {
		doc, err := parse.Parse(part, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s document %d: %w", file, i, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

// splitDocs splits input on document separators. Blank parts around a
// separator are dropped; blank input stays one part so it reports an error.
func splitDocs(in []byte) [][]byte {
	parts := bytes.Split(in, docSep)
	if len(parts) == 1 {
		return parts
	}
	res := parts[:0]
	for _, part := range parts {
		if len(bytes.TrimSpace(part)) != 0 {
			res = append(res, part)
		}
	}
	return res
}

func getObjFile(cc *cli.Context, file string, opts ...parse.ParseOption) (*ir.Node, error) {
	r, err := openFile(cc, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	doc, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return doc, nil
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	r, err := openFile(cc, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return d, nil
}

// openFile opens file for reading; "-" is standard input.
func openFile(cc *cli.Context, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, nil
}
