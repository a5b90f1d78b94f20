package ir

import (
	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/diag"
	"github.com/printlint/printlint/pkg/scan"
)

// Parse validates every tracked call site in src. On success it returns the
// file's IR and no errors. On failure it returns nil and every error found:
// a failed call site poisons the result but never stops the scan, so one
// pass reports all defects in the file.
func Parse(src []byte) (*IR, []diag.Error) {
	scanner := scan.NewSourceScanner(src)

	var (
		pairs      []Pair[Site]
		errs       []diag.Error
		failed     bool
		chunkStart int
	)

	for {
		tok, ok := scanner.Next()
		if !ok {
			break
		}
		kind, tracked := siteKind(tok.Kind)
		if !tracked {
			continue
		}

		// A tracked name is only a call site when '(' follows. Anything
		// else, the name and the peeked token both stay verbatim text.
		next, ok := scanner.Next()
		if !ok || next.Kind != csrc.SrcLParen {
			continue
		}

		before := src[chunkStart:tok.Span.Start]
		site, ok := parseCall(scanner, kind, &errs)
		if !ok {
			failed = true
		} else if !failed {
			pairs = append(pairs, Pair[Site]{Before: before, Value: site})
		}
		chunkStart = scanner.Pos()
	}

	if failed || len(errs) > 0 {
		return nil, errs
	}
	return &IR{Calls: Interpolation[Site]{Pairs: pairs, Last: src[chunkStart:]}}, nil
}

func siteKind(kind csrc.SourceKind) (SiteKind, bool) {
	switch kind {
	case csrc.SrcPrintf:
		return SitePrintf, true
	case csrc.SrcSprintf:
		return SiteSprintf, true
	case csrc.SrcSnprintf:
		return SiteSnprintf, true
	}
	return 0, false
}

// parseCall validates one call site. The scanner must be positioned just
// past the call's '('. On any failure the remaining arguments are drained
// so source scanning resumes past the call's closing ')'.
func parseCall(scanner *scan.SourceScanner, kind SiteKind, errs *[]diag.Error) (Site, bool) {
	args := scan.NewArgs(scanner)
	site := Site{Kind: kind}

	for i := 0; i < kind.PreArgs(); i++ {
		pre, ok := args.Next()
		if !ok {
			_, span := args.ShortCircuit()
			*errs = append(*errs, diag.NewMissingFunctionArgs(span))
			return Site{}, false
		}
		if i == 0 {
			site.Buffer = args.Source(pre.Span)
		} else {
			site.Size = args.Source(pre.Span)
		}
	}

	farg, ok := args.Next()
	if !ok {
		_, span := args.ShortCircuit()
		*errs = append(*errs, diag.NewMissingFunctionArgs(span))
		return Site{}, false
	}
	if farg.Single == nil || farg.Single.Kind != csrc.ArgString {
		ident := ""
		if farg.Single != nil && farg.Single.Kind == csrc.ArgIdent {
			ident = string(args.Source(farg.Single.Span))
		}
		*errs = append(*errs, diag.NewNonliteralFormat(farg.Span, ident))
		args.ShortCircuit()
		return Site{}, false
	}

	// The string token's own span, not the whole argument: a comment, cast,
	// or paren in front of the literal is part of the argument but not of
	// the format text. Trimming one byte at each end strips the quotes; the
	// token never includes trailing whitespace, so this is always safe.
	formatSpan := farg.Single.Span
	content := args.Source(csrc.Span{Start: formatSpan.Start + 1, End: formatSpan.End - 1})

	format, ok := matchFormat(args, scan.NewSpecifiers(content), formatSpan, errs)
	if !ok {
		return Site{}, false
	}
	site.Format = format
	return site, true
}

// matchFormat advances the specifier scanner and the argument splitter in
// lock step. Count mismatches are fatal to the call immediately; a type
// mismatch records its error and keeps matching, so every bad pairing in
// one call is reported.
func matchFormat(args *scan.Args, specs *scan.Specifiers, formatSpan csrc.Span, errs *[]diag.Error) (Interpolation[FormatValue], bool) {
	var (
		pairs  []Pair[FormatValue]
		failed bool
	)

	for {
		spec, okSpec := specs.Next()
		arg, okArg := args.Next()

		switch {
		case okSpec && okArg:
			switch {
			case arg.Cast != nil && arg.Cast.Type != spec.Type:
				*errs = append(*errs, diag.NewSpecifierCastMismatch(
					specs.Span(formatSpan.Start+1), spec.Type,
					arg.Cast.Span, arg.Cast.Type))
				failed = true
			case failed:
			default:
				pairs = append(pairs, Pair[FormatValue]{
					Before: specs.Before(),
					Value: FormatValue{
						Options:     spec.Options,
						Type:        spec.Type,
						Arg:         args.Source(arg.Span),
						TypeChecked: arg.Cast != nil,
					},
				})
			}

		case okSpec:
			additional := specs.Count() + 1
			_, argsSpan := args.ShortCircuit()
			*errs = append(*errs, diag.NewExcessSpecifiers(formatSpan, argsSpan, additional))
			return Interpolation[FormatValue]{}, false

		case okArg:
			remaining, argsSpan := args.ShortCircuit()
			*errs = append(*errs, diag.NewExcessArgs(formatSpan, argsSpan, remaining+1))
			return Interpolation[FormatValue]{}, false

		default:
			if failed {
				return Interpolation[FormatValue]{}, false
			}
			return Interpolation[FormatValue]{Pairs: pairs, Last: specs.Remainder()}, true
		}
	}
}
