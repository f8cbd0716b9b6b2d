package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jslc/internal/tokens"
)

func TestAstPrinter(t *testing.T) {
	plus := NewToken(tokens.PLUS, "+", nil, 1)
	minus := NewToken(tokens.MINUS, "-", nil, 1)
	star := NewToken(tokens.STAR, "*", nil, 1)

	var printer AstPrinter
	assert.Equal(t, "(+ 1 3)", printer.Print(&Binary[string]{
		Left:     &Literal[string]{Value: 1.0},
		Operator: plus,
		Right:    &Literal[string]{Value: 3.0},
	}))
	assert.Equal(t, "(- 5)", printer.Print(&Unary[string]{
		Operator: minus,
		Right:    &Literal[string]{Value: 5.0},
	}))
	assert.Equal(t, "(* (- 12.5) (group (+ 'a' nil)))", printer.Print(&Binary[string]{
		Left:     &Unary[string]{Operator: minus, Right: &Literal[string]{Value: 12.5}},
		Operator: star,
		Right: &Grouping[string]{Expression: &Binary[string]{
			Left:     &Literal[string]{Value: "a"},
			Operator: plus,
			Right:    &Literal[string]{},
		}},
	}))
}

// depthVisitor measures the height of a tree
type depthVisitor struct{}

func (v depthVisitor) VisitBinaryExpr(expr *Binary[int]) int {
	left, right := expr.Left.Accept(v), expr.Right.Accept(v)
	if left > right {
		return left + 1
	}
	return right + 1
}

func (v depthVisitor) VisitGroupingExpr(expr *Grouping[int]) int {
	return expr.Expression.Accept(v) + 1
}

func (v depthVisitor) VisitLiteralExpr(expr *Literal[int]) int {
	return 1
}

func (v depthVisitor) VisitUnaryExpr(expr *Unary[int]) int {
	return expr.Right.Accept(v) + 1
}

func TestVisitorResultType(t *testing.T) {
	tree := &Binary[int]{
		Left:     &Literal[int]{Value: 1.0},
		Operator: NewToken(tokens.PLUS, "+", nil, 1),
		Right: &Grouping[int]{Expression: &Unary[int]{
			Operator: NewToken(tokens.BANG, "!", nil, 1),
			Right:    &Literal[int]{Value: true},
		}},
	}
	assert.Equal(t, 4, tree.Accept(depthVisitor{}))
}
