package main

import (
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go"

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: ast Expr")
	}

	var out string
	switch os.Args[1] {
	case "Expr":
		out = generateAst("Expr", []string{
			"Binary: Left Expr[T], Operator Token, Right Expr[T]",
			"Grouping: Expression Expr[T]",
			"Literal: Value interface{}",
			"Unary: Operator Token, Right Expr[T]",
		})
	default:
		log.Fatalf("unknown base type %q", os.Args[1])
	}

	src, err := format.Source([]byte(out))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(src))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is a node of the tree, T is what a visitor produces\n", baseName)
	out += "type " + baseName + "[T any] interface {\n"
	out += "\tAccept(" + baseName + "Visitor[T]) T\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("// %sVisitor has one method per node type\n", baseName)
	out += fmt.Sprintf("type %sVisitor[T any] interface {\n", baseName)
	for _, t := range types {
		name := strings.TrimSpace(strings.Split(t, ":")[0])
		out += "\tVisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + name + "[T]) T\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	out := "type " + name + "[T any] struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + name + "[T]) Accept(visitor " + baseName + "Visitor[T]) T {\n"
	out += "\treturn visitor.Visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
