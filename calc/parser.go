package calc

import (
	"strconv"
	"strings"
)

// Parse turns a whitespace-separated prefix expression like "+ 1 * 2 3"
// into a Node tree. It returns ok=false on any malformed input: an unknown
// token, an incomplete operand list, or leftover tokens after a complete
// parse. There is no partial-tree result to inspect on failure.
func Parse(input string) (node *Node, ok bool) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, false
	}
	node, rest, ok := parseNode(tokens)
	if !ok || len(rest) != 0 {
		return nil, false
	}
	return node, true
}

func parseNode(tokens []string) (*Node, []string, bool) {
	if len(tokens) == 0 {
		return nil, nil, false
	}
	head, rest := tokens[0], tokens[1:]

	if op, ok := operatorFromToken(head); ok {
		left, rest, ok := parseNode(rest)
		if !ok {
			return nil, nil, false
		}
		right, rest, ok := parseNode(rest)
		if !ok {
			return nil, nil, false
		}
		return ExprNode(&Expression{Operator: op, Children: []*Node{left, right}}), rest, true
	}

	n, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return nil, nil, false
	}
	return ValNode(n), rest, true
}
