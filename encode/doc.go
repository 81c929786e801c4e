// Package encode writes content trees as text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "ratio", Val: ir.FromFloat32(1.1)},
//	})
//	err := encode.Encode(node, os.Stdout)
//	// {"name":"alice","ratio":1.1}
//
//	// Indented
//	err = encode.Encode(node, os.Stdout, encode.EncodeIndent(2))
//
//	// YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The default output is canonical: compact JSON, mappings in stored order,
// numbers through token.FormatInt and token.FormatFloat. Two trees are equal
// exactly when their canonical output is identical.
//
// NaN and the infinities are written as the JSON strings "NaN", "Infinity"
// and "-Infinity"; see package parse for the way back.
//
// # Related Packages
//
//   - github.com/signadot/ctree/ir - tree representation
//   - github.com/signadot/ctree/parse - parse text to trees
package encode
