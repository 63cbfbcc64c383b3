package rules

import "gopkg.in/yaml.v3"

// nodeVisitor receives callbacks as walkDocument performs a depth-first
// traversal of every parsed top-level document. This is the event-stream
// substitute the event-driven rules plug into: gopkg.in/yaml.v3's node
// tree already carries the span (Line/Column) and style information the
// spec's parser events would, so the traversal below stands in for
// listening to SequenceStart/MappingStart/Scalar/etc. events directly.
type nodeVisitor struct {
	OnMappingStart func(node *yaml.Node, parent *yaml.Node, depth int)
	OnMappingEnd   func(node *yaml.Node, depth int)
	OnSequenceStart func(node *yaml.Node, parent *yaml.Node, depth int)
	OnSequenceEnd   func(node *yaml.Node, depth int)
	OnScalar       func(node *yaml.Node, parent *yaml.Node, isKey bool, depth int)
	OnAlias        func(node *yaml.Node, parent *yaml.Node)
}

func walkDocument(doc *Document, v nodeVisitor) {
	for _, root := range doc.Docs {
		walkNode(root, nil, false, 0, v)
	}
}

func walkNode(node *yaml.Node, parent *yaml.Node, isKey bool, depth int, v nodeVisitor) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.MappingNode:
		if v.OnMappingStart != nil {
			v.OnMappingStart(node, parent, depth)
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			val := node.Content[i+1]
			walkNode(k, node, true, depth+1, v)
			walkNode(val, node, false, depth+1, v)
		}
		if v.OnMappingEnd != nil {
			v.OnMappingEnd(node, depth)
		}
	case yaml.SequenceNode:
		if v.OnSequenceStart != nil {
			v.OnSequenceStart(node, parent, depth)
		}
		for _, c := range node.Content {
			walkNode(c, node, false, depth+1, v)
		}
		if v.OnSequenceEnd != nil {
			v.OnSequenceEnd(node, depth)
		}
	case yaml.ScalarNode:
		if v.OnScalar != nil {
			v.OnScalar(node, parent, isKey, depth)
		}
	case yaml.AliasNode:
		if v.OnAlias != nil {
			v.OnAlias(node, parent)
		}
	}
}

// isPlainScalar reports whether node is an untagged, unquoted scalar —
// the only shape truthy/octal-values/float-values classify.
func isPlainScalar(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Style == 0
}
