package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bigoh/internal/ast"
	"bigoh/internal/parser"
)

func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, "\n")
}

func TestPrintRoundTripsSimpleLoop(t *testing.T) {
	src := "s<-0\nfor i<-1 to n do\nbegin\ns<-s+i\nend\n"
	prog, perrs, serrs := parser.ParseSource("<test>", src)
	require.Empty(t, perrs)
	require.Empty(t, serrs)

	printed := ast.Print(prog)
	reparsed, perrs2, serrs2 := parser.ParseSource("<test2>", printed)
	require.Empty(t, perrs2)
	require.Empty(t, serrs2)

	require.Equal(t, normalize(ast.Print(prog)), normalize(ast.Print(reparsed)))
}

func TestPrintRoundTripsRecursiveProcedure(t *testing.T) {
	src := "Fact(n)\nbegin\nif (n<=1) then\nbegin\nreturn 1\nend\nelse\nbegin\nreturn n*Fact(n-1)\nend\nend\n"
	prog, perrs, serrs := parser.ParseSource("<test>", src)
	require.Empty(t, perrs)
	require.Empty(t, serrs)

	printed := ast.Print(prog)
	require.Contains(t, printed, "Fact(n)")
	require.Contains(t, printed, "if (n <= 1) then")

	reparsed, perrs2, serrs2 := parser.ParseSource("<test2>", printed)
	require.Empty(t, perrs2)
	require.Empty(t, serrs2)
	require.Equal(t, normalize(ast.Print(prog)), normalize(ast.Print(reparsed)))
}
