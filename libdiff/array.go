package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
)

// DiffArray aligns the elements of two sequences by content. A run of
// deletions followed by a run of insertions is paired up element by element
// and each pair is compared with df.
func DiffArray(from, to *ir.Node, path string, df DiffFunc) []Change {
	m := map[uint64]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			for range n {
				// equal hashes; df confirms
				res = append(res, df(from.Values[fi], to.Values[ti], kpath.JoinIndex(path, ti))...)
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			nIns := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				nIns = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(n, nIns)
			for range paired {
				res = append(res, df(from.Values[fi], to.Values[ti], kpath.JoinIndex(path, ti))...)
				fi++
				ti++
			}
			for range n - paired {
				res = append(res, Change{Path: kpath.JoinIndex(path, fi), Op: Delete, From: from.Values[fi].Clone()})
				fi++
			}
			for range nIns - paired {
				res = append(res, Change{Path: kpath.JoinIndex(path, ti), Op: Insert, To: to.Values[ti].Clone()})
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Change{Path: kpath.JoinIndex(path, ti), Op: Insert, To: to.Values[ti].Clone()})
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[uint64]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = seqRune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}
