package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a stylesheet of ".class" and "#id" rules. Comma-separated selector lists produce one rule
// per selector; other selectors and everything inside @-rules are ignored.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)
	var (
		current []int // indexes into sheet.Rules of the open ruleset
		atDepth int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil {
				if err == io.EOF {
					return sheet, nil
				}
				return sheet, fmt.Errorf("parse css: %w", err)
			}
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			current = current[:0]
			if atDepth > 0 {
				continue
			}
			for _, sel := range selectors(p.Values()) {
				current = append(current, len(sheet.Rules))
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
			}
		case css.EndRulesetGrammar:
			current = current[:0]
		case css.DeclarationGrammar:
			if len(current) == 0 {
				continue
			}
			key := strings.ToLower(string(data))
			val := tokenText(p.Values())
			for _, i := range current {
				sheet.Rules[i].Props[key] = val
			}
		}
	}
}

func selectors(vals []css.Token) []string {
	var out []string
	for _, part := range strings.Split(tokenText(vals), ",") {
		sel := strings.TrimSpace(part)
		if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') || strings.ContainsAny(sel, " >+~:[") {
			continue
		}
		out = append(out, sel)
	}
	return out
}

func tokenText(vals []css.Token) string {
	var b bytes.Buffer
	for _, v := range vals {
		b.Write(v.Data)
	}
	return strings.TrimSpace(b.String())
}
