package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
)

// DiffObject aligns the keys of two mappings, reports keys present on one
// side only and recurses with df on keys present on both.
func DiffObject(from, to *ir.Node, path string, df DiffFunc) []Change {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var res []Change
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				res = append(res, Change{
					Path: kpath.JoinField(path, from.Fields[fi]),
					Op:   Delete,
					From: from.Values[fi].Clone(),
				})
				fi++
			case diffpatch.DiffEqual:
				res = append(res, df(from.Values[fi], to.Values[ti], kpath.JoinField(path, to.Fields[ti]))...)
				fi++
				ti++
			case diffpatch.DiffInsert:
				res = append(res, Change{
					Path: kpath.JoinField(path, to.Fields[ti]),
					Op:   Insert,
					To:   to.Values[ti].Clone(),
				})
				ti++
			}
		}
	}
	return res
}

func mapFieldsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = seqRune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

// seqRune maps n to a rune that survives conversion to a string, skipping
// the surrogate range.
func seqRune(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
