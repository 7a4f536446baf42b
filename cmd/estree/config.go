package main

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/t14raptor/go-estree/parser"
)

// loadOptions reads the parser options from the --config file, if any, and
// applies the command line flags on top.
func loadOptions(f *flags) (parser.Options, error) {
	var opts parser.Options
	if f.config != "" {
		buf, err := ioutil.ReadFile(f.config)
		if err != nil {
			return opts, errors.Wrapf(err, "reading config %s", f.config)
		}
		if err := yaml.UnmarshalStrict(buf, &opts); err != nil {
			return opts, errors.Wrapf(err, "decoding config %s", f.config)
		}
	}

	if f.ecma != 0 {
		opts.EcmaVersion = f.ecma
	}
	if f.module {
		opts.SourceType = parser.SourceModule
	}
	switch opts.SourceType {
	case "", parser.SourceScript, parser.SourceModule:
	default:
		return opts, errors.Errorf("invalid sourceType %q", opts.SourceType)
	}
	opts.Locations = opts.Locations || f.locations
	opts.Ranges = opts.Ranges || f.ranges
	if f.sourceFile != "" {
		opts.SourceFile = f.sourceFile
	}
	return opts, nil
}

// readSource reads the named file, or r when the name is empty or "-".
func readSource(name string, r io.Reader) (string, error) {
	if name == "" || name == "-" {
		buf, err := ioutil.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(buf), nil
	}
	buf, err := ioutil.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(buf), nil
}
