// Command isoval parses and validates FedNow message files. It walks the
// given files or directories, decodes every .xml/.json document, runs
// validation and prints one outcome line per file. An optional YAML manifest
// pins expected outcomes per file for conformance runs.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/fednow"
	"github.com/open-payments/isoval/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "isoval CLI\n\nUsage:\n  isoval validate [-lang en|ja] [-manifest cases.yaml] PATH...\n\nPATH may be a message file (.xml/.json) or a directory to walk.")
}

type manifest struct {
	Cases []manifestCase `yaml:"cases"`
}

type manifestCase struct {
	File  string `yaml:"file"`
	Valid bool   `yaml:"valid"`
	Code  uint32 `yaml:"code,omitempty"`
}

type outcome struct {
	valid bool
	code  uint32
	err   error
}

func validateCmd(args []string) {
	fs2 := flag.NewFlagSet("validate", flag.ExitOnError)
	var lang string
	var manifestPath string
	fs2.StringVar(&lang, "lang", "en", "message language (en/ja)")
	fs2.StringVar(&manifestPath, "manifest", "", "YAML manifest of expected outcomes")
	_ = fs2.Parse(args)
	if fs2.NArg() == 0 {
		fs2.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	var expected map[string]manifestCase
	if manifestPath != "" {
		var err error
		expected, err = loadManifest(manifestPath)
		if err != nil {
			fatalf("manifest: %v", err)
		}
	}

	files, err := collectFiles(fs2.Args())
	if err != nil {
		fatalf("%v", err)
	}
	if len(files) == 0 {
		fatalf("no .xml or .json files found")
	}

	mismatches := 0
	invalid := 0
	for _, path := range files {
		o := validateFile(path)
		if o.valid {
			fmt.Printf("[Valid] %s\n", path)
		} else {
			invalid++
			fmt.Printf("[Invalid] %s: %v\n", path, o.err)
		}
		if expected != nil {
			if want, ok := expected[filepath.Base(path)]; ok && !matches(want, o) {
				mismatches++
				fmt.Printf("[Mismatch] %s: want valid=%t code=%d, got valid=%t code=%d\n",
					path, want.Valid, want.Code, o.valid, o.code)
			}
		}
	}

	if expected != nil {
		if mismatches > 0 {
			fatalf("%d manifest mismatch(es)", mismatches)
		}
		return
	}
	if invalid > 0 {
		os.Exit(1)
	}
}

func matches(want manifestCase, got outcome) bool {
	if want.Valid != got.valid {
		return false
	}
	return want.Code == 0 || want.Code == got.code
}

func loadManifest(path string) (map[string]manifestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	out := make(map[string]manifestCase, len(m.Cases))
	for _, c := range m.Cases {
		out[c.File] = c
	}
	return out, nil
}

func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".xml", ".json":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func validateFile(path string) outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return outcome{err: err}
	}
	var msg *fednow.FednowMessage
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		msg, err = fednow.ParseJSON(data)
	default:
		msg, err = fednow.ParseXML(data)
	}
	if err == nil {
		err = msg.Validate()
	}
	if err == nil {
		return outcome{valid: true}
	}
	if ve, ok := isoval.AsValidationError(err); ok {
		return outcome{code: ve.Code, err: err}
	}
	return outcome{err: err}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
