package calc

import "testing"

func TestParseLiteral(t *testing.T) {
	node, ok := Parse("42")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if node.Kind != KindVal || node.Value != 42 {
		t.Fatalf("unexpected node: %+v", node)
	}
}

func TestParseSimpleExpression(t *testing.T) {
	node, ok := Parse("+ 1 5")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if node.Kind != KindExpr || node.Expr.Operator != Add {
		t.Fatalf("unexpected node: %+v", node)
	}
	if len(node.Expr.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Expr.Children))
	}
}

func TestParseNestedExpression(t *testing.T) {
	// "+ 1 * 2 3" => 1 + (2 * 3)
	node, ok := Parse("+ 1 * 2 3")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	right := node.Expr.Children[1]
	if right.Kind != KindExpr || right.Expr.Operator != Mul {
		t.Fatalf("unexpected right child: %+v", right)
	}
}

func TestParseRejectsUnknownToken(t *testing.T) {
	if _, ok := Parse("+ 1 foo"); ok {
		t.Fatalf("expected parse to fail on unknown token")
	}
}

func TestParseRejectsIncompleteExpression(t *testing.T) {
	if _, ok := Parse("+ 1"); ok {
		t.Fatalf("expected parse to fail on missing operand")
	}
}

func TestParseRejectsTrailingTokens(t *testing.T) {
	if _, ok := Parse("+ 1 5 9"); ok {
		t.Fatalf("expected parse to fail on leftover tokens")
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	if _, ok := Parse("   "); ok {
		t.Fatalf("expected parse to fail on empty input")
	}
}
