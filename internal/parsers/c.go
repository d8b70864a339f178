package parsers

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"

	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

var decimalLiteral = regexp.MustCompile(`^-?[0-9]+$`)

// cParser reads status codes from the enumerators of C enum bodies.
type cParser struct {
	*treeSitterParser
}

// NewCParser creates a new C parser.
func NewCParser() *cParser {
	lang := sitter.NewLanguage(c.Language())
	return &cParser{
		treeSitterParser: newTreeSitterParser(lang, "c"),
	}
}

// Parse extracts one status per enumerator that has a decimal value.
func (p *cParser) Parse(ctx context.Context, source []byte) ([]extraction.Status, error) {
	statuses := []extraction.Status{}

	err := p.parseTree(ctx, source, func(root *sitter.Node) {
		walkTree(root, func(n *sitter.Node) bool {
			if n.Kind() != "enumerator" {
				return true
			}
			if status, ok := p.extractEnumerator(n, source); ok {
				statuses = append(statuses, status)
			}
			return false
		})
	})
	if err != nil {
		return nil, err
	}

	return statuses, nil
}

// extractEnumerator converts `name = value` into a Status. Enumerators
// without an explicit decimal value are skipped.
func (p *cParser) extractEnumerator(node *sitter.Node, source []byte) (extraction.Status, bool) {
	nameNode := node.ChildByFieldName("name")
	valueNode := node.ChildByFieldName("value")
	if nameNode == nil || valueNode == nil {
		return extraction.Status{}, false
	}

	// -4 may arrive as a signed number_literal or as a unary_expression.
	literal := strings.Join(strings.Fields(extractNodeText(valueNode, source)), "")
	if !decimalLiteral.MatchString(literal) {
		return extraction.Status{}, false
	}
	code, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return extraction.Status{}, false
	}

	return extraction.Status{
		Name:        extractNodeText(nameNode, source),
		Code:        code,
		Description: p.trailingComment(node, source),
		Line:        int(nameNode.StartPosition().Row) + 1,
	}, true
}

// trailingComment returns the block comment following node on its last row.
// Without a trailing comma the grammar may attach the comment to the
// enumerator itself, so its last children are checked first.
func (p *cParser) trailingComment(node *sitter.Node, source []byte) *string {
	row := node.EndPosition().Row

	for i := int(node.ChildCount()) - 1; i >= 0; i-- {
		child := node.Child(uint(i))
		if child.Kind() != "comment" {
			break
		}
		if desc := blockCommentText(extractNodeText(child, source)); desc != nil {
			return desc
		}
	}

	for sib := node.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if sib.StartPosition().Row != row {
			return nil
		}
		switch sib.Kind() {
		case ",":
			continue
		case "comment":
			return blockCommentText(extractNodeText(sib, source))
		default:
			return nil
		}
	}
	return nil
}

// blockCommentText returns the trimmed interior of a /* */ comment.
func blockCommentText(text string) *string {
	if len(text) < 4 || !strings.HasPrefix(text, "/*") || !strings.HasSuffix(text, "*/") {
		return nil
	}
	return extraction.StringPtr(strings.TrimSpace(text[2 : len(text)-2]))
}
