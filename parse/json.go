package parse

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/token"
)

type jsonParser struct {
	dec  *gojson.Decoder
	opts *parseOpts
}

func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	if err := checkJSON(d); err != nil {
		return nil, err
	}
	dec := gojson.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	p := &jsonParser{dec: dec, opts: opts}
	tok, err := p.token()
	if err != nil {
		return nil, err
	}
	res, err := p.value(tok)
	if err != nil {
		return nil, err
	}
	off := dec.InputOffset()
	if _, err := dec.Token(); err != io.EOF {
		return nil, errorf(off, "trailing data after document")
	}
	return res, nil
}

// checkJSON rejects text outside the JSON grammar. The token reader skips
// separators without checking them, so structure is validated up front.
func checkJSON(d []byte) error {
	if len(bytes.TrimSpace(d)) == 0 {
		return errorf(int64(len(d)), "empty document")
	}
	if gojson.Valid(d) {
		return nil
	}
	var v any
	err := gojson.Unmarshal(d, &v)
	var syn *gojson.SyntaxError
	if errors.As(err, &syn) {
		return errorf(syn.Offset, "%s", syn.Error())
	}
	if err != nil {
		return errorf(0, "%s", err.Error())
	}
	return errorf(0, "invalid JSON")
}

func (p *jsonParser) token() (gojson.Token, error) {
	off := p.dec.InputOffset()
	tok, err := p.dec.Token()
	if err == io.EOF {
		return nil, errorf(off, "unexpected end of input")
	}
	if err != nil {
		var syn *gojson.SyntaxError
		if errors.As(err, &syn) {
			return nil, errorf(syn.Offset, "%s", syn.Error())
		}
		return nil, errorf(off, "%s", err.Error())
	}
	return tok, nil
}

func (p *jsonParser) value(tok gojson.Token) (*ir.Node, error) {
	switch x := tok.(type) {
	case gojson.Delim:
		switch x {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
		return nil, errorf(p.dec.InputOffset()-1, "unexpected %q", rune(x))
	case gojson.Number:
		return p.number(string(x))
	case string:
		if p.opts.specialFloats {
			if f, ok := token.SpecialFloat(x); ok {
				return ir.FromFloat(f), nil
			}
		}
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, errorf(p.dec.InputOffset(), "unexpected token %v", tok)
}

func (p *jsonParser) object() (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for {
		off := p.dec.InputOffset()
		tok, err := p.token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(gojson.Delim); ok && d == '}' {
			return ir.FromKeyVals(kvs), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errorf(off, "expected mapping key, got %v", tok)
		}
		tok, err = p.token()
		if err != nil {
			return nil, err
		}
		val, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
}

func (p *jsonParser) array() (*ir.Node, error) {
	vals := []*ir.Node{}
	for {
		tok, err := p.token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(gojson.Delim); ok && d == ']' {
			return ir.FromSlice(vals), nil
		}
		val, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
}

func (p *jsonParser) number(lit string) (*ir.Node, error) {
	end := p.dec.InputOffset()
	start := end - int64(len(lit))
	isFloat, err := token.LexNumber([]byte(lit))
	if err != nil {
		return nil, errorf(start, "%v: %q", err, lit)
	}
	if !isFloat {
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, errorf(start, "integer %s out of range", lit)
		}
		return ir.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, errorf(start, "number %s out of range", lit)
	}
	res := ir.FromFloat(f)
	res.Number = lit
	return res, nil
}
