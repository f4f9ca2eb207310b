package msbfile

import (
	"strings"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrSyntax is returned when a declaration file is malformed. The line
// number of the offending construct is attached as metadata.
var ErrSyntax = zerr.New("malformed target declaration")

// parser is a cursor over the declaration source. The grammar is:
//
//	target NAME outputs(path ...)? [files(path ...) targets(name, ...)] { command lines }
//
// with the outputs clause optional and the recipe block holding one shell
// command per non-empty line.
type parser struct {
	src string
	pos int
}

// parseDeclarations parses every target declaration in src, in file order.
func parseDeclarations(src string) ([]domain.Target, error) {
	p := &parser{src: src}
	var targets []domain.Target
	for {
		p.skipSpace()
		if p.eof() {
			return targets, nil
		}
		t, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
}

func (p *parser) parseTarget() (domain.Target, error) {
	if !p.accept("target") {
		return domain.Target{}, p.errf(`expected "target" keyword`)
	}
	if p.eof() || !isSpace(p.src[p.pos]) {
		return domain.Target{}, p.errf(`expected whitespace after "target"`)
	}
	p.skipSpace()

	name, err := p.ident()
	if err != nil {
		return domain.Target{}, err
	}
	p.skipSpace()

	var outputs []string
	if p.accept("outputs(") {
		if outputs, err = p.pathList(); err != nil {
			return domain.Target{}, err
		}
		p.skipSpace()
	}

	if !p.accept("[") {
		return domain.Target{}, p.errf(`expected "[" opening the dependency list`)
	}
	p.skipSpace()
	if !p.accept("files(") {
		return domain.Target{}, p.errf(`expected "files("`)
	}
	inputs, err := p.pathList()
	if err != nil {
		return domain.Target{}, err
	}
	p.skipSpace()
	if !p.accept("targets(") {
		return domain.Target{}, p.errf(`expected "targets("`)
	}
	deps, err := p.nameList()
	if err != nil {
		return domain.Target{}, err
	}
	p.skipSpace()
	if !p.accept("]") {
		return domain.Target{}, p.errf(`expected "]" closing the dependency list`)
	}
	p.skipSpace()

	recipe, err := p.recipeBlock()
	if err != nil {
		return domain.Target{}, err
	}

	return domain.Target{
		Name:         domain.NewInternedString(name),
		Outputs:      internStrings(outputs),
		Inputs:       internStrings(inputs),
		Dependencies: internStrings(deps),
		Recipe:       recipe,
	}, nil
}

// pathList consumes whitespace-separated file paths up to the closing
// parenthesis. A path is any run of characters that is neither whitespace
// nor ')'.
func (p *parser) pathList() ([]string, error) {
	var paths []string
	for {
		p.skipSpace()
		start := p.pos
		for !p.eof() && !isSpace(p.src[p.pos]) && p.src[p.pos] != ')' {
			p.pos++
		}
		if p.pos == start {
			break
		}
		paths = append(paths, p.src[start:p.pos])
	}
	if !p.accept(")") {
		return nil, p.errf(`expected ")"`)
	}
	return paths, nil
}

// nameList consumes comma-separated target names up to the closing
// parenthesis, allowing whitespace around the commas.
func (p *parser) nameList() ([]string, error) {
	var names []string
	for {
		p.skipSpace()
		start := p.pos
		for !p.eof() && !isSpace(p.src[p.pos]) && p.src[p.pos] != ',' && p.src[p.pos] != ')' {
			p.pos++
		}
		if p.pos > start {
			names = append(names, p.src[start:p.pos])
		}
		p.skipSpace()
		if p.accept(",") {
			continue
		}
		break
	}
	if !p.accept(")") {
		return nil, p.errf(`expected ")"`)
	}
	return names, nil
}

// recipeBlock consumes a brace-delimited block and returns its non-empty
// lines, trimmed, in order.
func (p *parser) recipeBlock() ([]string, error) {
	if !p.accept("{") {
		return nil, p.errf(`expected "{" opening the recipe`)
	}
	end := strings.Index(p.src[p.pos:], "}")
	if end < 0 {
		return nil, p.errf("unterminated recipe block")
	}
	body := p.src[p.pos : p.pos+end]
	p.pos += end + 1

	var recipe []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			recipe = append(recipe, line)
		}
	}
	return recipe, nil
}

func (p *parser) ident() (string, error) {
	start := p.pos
	for !p.eof() && isAlnum(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf("expected target name")
	}
	return p.src[start:p.pos], nil
}

func (p *parser) accept(lit string) bool {
	if strings.HasPrefix(p.src[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) line() int {
	return strings.Count(p.src[:p.pos], "\n") + 1
}

func (p *parser) errf(msg string) error {
	return zerr.With(zerr.Wrap(ErrSyntax, msg), "line", p.line())
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
