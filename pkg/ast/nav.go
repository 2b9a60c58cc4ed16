package ast

import (
	goldast "github.com/yuin/goldmark/ast"
)

// FindNode returns the first node under parent, in document order, for which
// finder returns true.
func FindNode(parent goldast.Node, finder func(n goldast.Node) bool) goldast.Node {
	var foundNode goldast.Node

	goldast.Walk(parent, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if !entering {
			return goldast.WalkContinue, nil
		}
		if finder(n) {
			foundNode = n
			return goldast.WalkStop, nil
		}

		return goldast.WalkContinue, nil
	})

	return foundNode
}

// FindNodes returns every node under parent for which finder returns true.
func FindNodes(parent goldast.Node, finder func(n goldast.Node) bool) []goldast.Node {
	var found []goldast.Node

	goldast.Walk(parent, func(n goldast.Node, entering bool) (goldast.WalkStatus, error) {
		if entering && finder(n) {
			found = append(found, n)
		}

		return goldast.WalkContinue, nil
	})

	return found
}

// FindKind returns every node of the given kind under parent.
func FindKind(parent goldast.Node, kind goldast.NodeKind) []goldast.Node {
	return FindNodes(parent, func(n goldast.Node) bool {
		return n.Kind() == kind
	})
}

// TopLevel returns the ancestor of n which is a direct child of the
// document, or n itself when it already is one.
func TopLevel(n goldast.Node) goldast.Node {
	for n != nil && n.Parent() != nil && n.Parent().Kind() != goldast.KindDocument {
		n = n.Parent()
	}

	return n
}
