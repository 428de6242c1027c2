package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kreopt/structure/dcm"
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/ir"
)

var textSep = []byte("\n---\n")

// readInput reads file, or in when file is "-".
func readInput(in io.Reader, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

// splitDocs decodes every document in b. Text formats separate documents
// with a "---" line, dcm documents are simply concatenated.
func splitDocs(cfg *MainConfig, file string, b []byte) ([]ir.Document, error) {
	if cfg.inFormat(file) == format.DCMFormat {
		var res []ir.Document
		for len(b) > 0 {
			d, n, err := dcm.DecodePrefix(b)
			if err != nil {
				return nil, fmt.Errorf("error decoding document %d: %w", len(res), err)
			}
			res = append(res, d)
			b = b[n:]
		}
		return res, nil
	}
	codec := cfg.decoder(file)
	parts := bytes.Split(b, textSep)
	res := make([]ir.Document, 0, len(parts))
	for i, part := range parts {
		if len(bytes.TrimSpace(part)) == 0 && len(parts) > 1 {
			continue
		}
		d, err := codec.Decode(part)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, d)
	}
	return res, nil
}

// readDocs reads all documents from files, or from in when files is
// empty.
func readDocs(cfg *MainConfig, in io.Reader, files []string) ([]ir.Document, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []ir.Document
	for _, file := range files {
		b, err := readInput(in, file)
		if err != nil {
			return nil, err
		}
		docs, err := splitDocs(cfg, file, b)
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", file, err)
		}
		res = append(res, docs...)
	}
	return res, nil
}

// readDoc reads exactly one document from file.
func readDoc(cfg *MainConfig, in io.Reader, file string) (ir.Document, error) {
	docs, err := readDocs(cfg, in, []string{file})
	if err != nil {
		return ir.Document{}, err
	}
	if len(docs) != 1 {
		return ir.Document{}, fmt.Errorf("%s: expected 1 document, got %d", file, len(docs))
	}
	return docs[0], nil
}

// writeDocs encodes docs in the output format, separating text documents
// the way splitDocs expects.
func writeDocs(cfg *MainConfig, w io.Writer, docs []ir.Document) error {
	codec := cfg.encoder()
	text := codec.Format().IsText()
	for i, d := range docs {
		if i > 0 && text {
			if _, err := w.Write(textSep[1:]); err != nil {
				return err
			}
		}
		b, err := codec.Encode(d)
		if err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
		if text && !bytes.HasSuffix(b, []byte("\n")) {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
