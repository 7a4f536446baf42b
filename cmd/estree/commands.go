package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/token"
)

// run prepares the logger, options and source shared by every command.
func run(cmd *cobra.Command, f *flags, file string, fn func(logger *zap.Logger, src string, opts parser.Options) error) error {
	logger, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts, err := loadOptions(f)
	if err != nil {
		return err
	}
	src, err := readSource(file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if file == "" {
		file = "-"
	}
	logger.Debug("parsing",
		zap.String("file", file),
		zap.Int("bytes", len(src)),
		zap.Int("ecmaVersion", opts.EcmaVersion),
		zap.String("sourceType", opts.SourceType))

	started := time.Now()
	err = fn(logger.With(zap.String("file", file)), src, opts)
	logger.Debug("done", zap.Duration("elapsed", time.Since(started)))
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			logger.Debug("syntax error",
				zap.String("message", se.Message),
				zap.Int("pos", se.Pos),
				zap.Int("line", se.Loc.Line),
				zap.Int("column", se.Loc.Column))
		}
		return errors.Wrap(err, file)
	}
	return nil
}

func writeNode(w io.Writer, n ast.Node, pretty bool) error {
	b, err := ast.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "encoding tree")
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", "  "); err != nil {
			return errors.Wrap(err, "indenting tree")
		}
		b = buf.Bytes()
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func parseCmd(f *flags) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "print the ESTree JSON of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, argOrEmpty(args, 0), func(logger *zap.Logger, src string, opts parser.Options) error {
				var comments int
				opts.OnComment = func(parser.Comment) { comments++ }
				prog, err := parser.Parse(src, opts)
				if err != nil {
					return err
				}
				logger.Debug("parsed",
					zap.Int("statements", len(prog.Body)),
					zap.Int("comments", comments))
				return writeNode(cmd.OutOrStdout(), prog, pretty)
			})
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the JSON output")
	return cmd
}

func exprCmd(f *flags) *cobra.Command {
	var (
		pretty bool
		offset int
	)
	cmd := &cobra.Command{
		Use:   "expr [FILE]",
		Short: "print the ESTree JSON of the expression at an offset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, argOrEmpty(args, 0), func(logger *zap.Logger, src string, opts parser.Options) error {
				if offset < 0 || offset > len(src) {
					return errors.Errorf("offset %d out of range", offset)
				}
				expr, err := parser.ParseExpressionAt(src, offset, opts)
				if err != nil {
					return err
				}
				logger.Debug("parsed expression", zap.String("type", expr.Type()), zap.Int("end", int(expr.Idx1())))
				return writeNode(cmd.OutOrStdout(), expr, pretty)
			})
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the JSON output")
	cmd.Flags().IntVar(&offset, "offset", 0, "byte offset the expression starts at")
	return cmd
}

// tokenJSON is the line written for each token.
type tokenJSON struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`

	Loc   *ast.SourceLocation `json:"loc,omitempty"`
	Range *[2]int             `json:"range,omitempty"`
}

type regexpJSON struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

func tokenValue(v any) any {
	switch v := v.(type) {
	case *parser.RegExpValue:
		return regexpJSON{Pattern: v.Pattern, Flags: v.Flags}
	case *big.Int:
		return v.String() + "n"
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return json.RawMessage("null")
		}
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return v
}

func tokensCmd(f *flags) *cobra.Command {
	var comments bool
	cmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "print the token stream as JSON lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, argOrEmpty(args, 0), func(logger *zap.Logger, src string, opts parser.Options) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetEscapeHTML(false)
				var commentErr error
				if comments {
					opts.OnComment = func(c parser.Comment) {
						typ := "Line"
						if c.Block {
							typ = "Block"
						}
						if commentErr == nil {
							commentErr = enc.Encode(tokenJSON{Type: typ, Value: c.Text, Start: c.Start, End: c.End, Loc: c.Loc, Range: c.Range})
						}
					}
				}
				tz := parser.Tokenize(src, opts)
				count := 0
				for {
					tok, err := tz.Next()
					if err != nil {
						return err
					}
					if commentErr != nil {
						return errors.Wrap(commentErr, "writing comment")
					}
					if tok.Type == token.Eof {
						break
					}
					out := tokenJSON{
						Type:  tok.Type.String(),
						Value: tokenValue(tok.Value),
						Start: tok.Start,
						End:   tok.End,
						Loc:   tok.Loc,
						Range: tok.Range,
					}
					if err := enc.Encode(out); err != nil {
						return errors.Wrap(err, "writing token")
					}
					count++
				}
				logger.Debug("tokenized", zap.Int("tokens", count))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&comments, "comments", false, "include comments in the stream")
	return cmd
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
