package ast

import (
	"strconv"
	"strings"
)

// Printing contexts:
const (
	topPos = iota
	funcPos
	argPos
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, topPos, e)
	return sb.String()
}

func exprString(sb *strings.Builder, pos int, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Number:
		if et.Value < 0 && pos == argPos {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatInt(et.Value, 10))
			sb.WriteByte(')')
			return
		}
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *App:
		if pos == argPos {
			sb.WriteByte('(')
		}
		exprString(sb, funcPos, et.Func)
		sb.WriteByte(' ')
		exprString(sb, argPos, et.Arg)
		if pos == argPos {
			sb.WriteByte(')')
		}

	case *Lambda:
		if pos != topPos {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		sb.WriteString(et.Param)
		sb.WriteString(". ")
		exprString(sb, topPos, et.Body)
		if pos != topPos {
			sb.WriteByte(')')
		}

	case *Let:
		if pos != topPos {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, topPos, et.Value)
		sb.WriteString(" in ")
		exprString(sb, topPos, et.Body)
		if pos != topPos {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")
	}
}
