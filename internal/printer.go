package internal

import (
	"fmt"
	"strconv"
)

// AstPrinter renders expressions in prefix form, e.g. (+ 1 (- 5))
type AstPrinter struct{}

// Print renders expr
func (v AstPrinter) Print(expr Expr[string]) string {
	return expr.Accept(v)
}

func (v AstPrinter) VisitBinaryExpr(expr *Binary[string]) string {
	return fmt.Sprintf("(%s %s %s)", expr.Operator.lexeme, expr.Left.Accept(v), expr.Right.Accept(v))
}

func (v AstPrinter) VisitGroupingExpr(expr *Grouping[string]) string {
	return fmt.Sprintf("(group %s)", expr.Expression.Accept(v))
}

func (v AstPrinter) VisitLiteralExpr(expr *Literal[string]) string {
	switch value := expr.Value.(type) {
	case nil:
		return "nil"
	case string:
		return "'" + value + "'"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func (v AstPrinter) VisitUnaryExpr(expr *Unary[string]) string {
	return fmt.Sprintf("(%s %s)", expr.Operator.lexeme, expr.Right.Accept(v))
}
