package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bigoh/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, perrs, serrs := ParseSource("<test>", src)
	require.Empty(t, serrs, "scan errors")
	require.Empty(t, perrs, "parse errors")
	require.NotNil(t, prog)
	return prog
}

func TestParsesSimpleAssignment(t *testing.T) {
	prog := parseOK(t, "s<-0\n")
	require.Len(t, prog.Items, 1)
	assign, ok := prog.Items[0].(*ast.Assign)
	require.True(t, ok)
	require.Equal(t, "s", assign.Target.(*ast.VarExpr).Name)
}

func TestParsesForLoopWithDefaultStep(t *testing.T) {
	src := "for i<-1 to n do\nbegin\ns<-s+i\nend\n"
	prog := parseOK(t, src)
	require.Len(t, prog.Items, 1)
	f, ok := prog.Items[0].(*ast.For)
	require.True(t, ok)
	require.Equal(t, "i", f.Var)
	require.True(t, f.Inclusive)
	require.False(t, f.HasExplicitStep)
	require.Len(t, f.Body.Stmts, 1)
}

func TestParsesForLoopWithExplicitStep(t *testing.T) {
	src := "for i<-1 to n step 2 do\nbegin\ns<-s+i\nend\n"
	prog := parseOK(t, src)
	f := prog.Items[0].(*ast.For)
	require.True(t, f.HasExplicitStep)
	require.NotNil(t, f.Step)
}

func TestParsesWhileLoop(t *testing.T) {
	src := "i<-n\nwhile (i>1) do\nbegin\ni<-i div 2\nend\n"
	prog := parseOK(t, src)
	require.Len(t, prog.Items, 2)
	w, ok := prog.Items[1].(*ast.While)
	require.True(t, ok)
	cond := w.Cond.(*ast.BinExpr)
	require.Equal(t, ">", cond.Op)
}

func TestParsesRepeatUntilWithNoBlockWrapper(t *testing.T) {
	src := "repeat\ni<-i-1\nuntil (i=0)\n"
	prog := parseOK(t, src)
	r, ok := prog.Items[0].(*ast.Repeat)
	require.True(t, ok)
	require.Len(t, r.Stmts, 1)
}

func TestParsesIfElse(t *testing.T) {
	src := "if (n<=1) then\nbegin\nreturn 1\nend\nelse\nbegin\nreturn n\nend\n"
	prog := parseOK(t, src)
	ifs, ok := prog.Items[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifs.Else)
}

func TestParsesProcedureWithSliceParam(t *testing.T) {
	src := "Sum(A[1..n])\nbegin\nreturn 0\nend\n"
	prog := parseOK(t, src)
	proc, ok := prog.Items[0].(*ast.Proc)
	require.True(t, ok)
	require.Equal(t, "Sum", proc.Name)
	require.Len(t, proc.Params, 1)
	require.True(t, proc.Params[0].HasSlice)
}

func TestParsesClassDeclaration(t *testing.T) {
	src := "Node(value, next)\n"
	prog := parseOK(t, src)
	cls, ok := prog.Items[0].(*ast.Class)
	require.True(t, ok)
	require.Equal(t, []string{"value", "next"}, cls.Attributes)
}

func TestParsesObjectDeclaration(t *testing.T) {
	src := "Node n\n"
	prog := parseOK(t, src)
	decl, ok := prog.Items[0].(*ast.ObjectDecl)
	require.True(t, ok)
	require.Equal(t, "Node", decl.ClassName)
	require.Equal(t, "n", decl.VarName)
}

func TestParsesCallStatement(t *testing.T) {
	src := "CALL MergeSort(A, lo, hi)\n"
	prog := parseOK(t, src)
	call, ok := prog.Items[0].(*ast.CallStmt)
	require.True(t, ok)
	require.Equal(t, "MergeSort", call.Name)
	require.Len(t, call.Args, 3)
}

func TestParsesIndexAndSliceExpressions(t *testing.T) {
	src := "x<-A[i]\ny<-A[lo..hi]\n"
	prog := parseOK(t, src)
	assign1 := prog.Items[0].(*ast.Assign)
	_, isIndex := assign1.Value.(*ast.IndexExpr)
	require.True(t, isIndex)

	assign2 := prog.Items[1].(*ast.Assign)
	_, isSlice := assign2.Value.(*ast.SliceExpr)
	require.True(t, isSlice)
}

func TestOperatorPrecedence(t *testing.T) {
	src := "x<-1+2*3\n"
	prog := parseOK(t, src)
	assign := prog.Items[0].(*ast.Assign)
	top := assign.Value.(*ast.BinExpr)
	require.Equal(t, "+", top.Op)
	right := top.Right.(*ast.BinExpr)
	require.Equal(t, "*", right.Op)
}

func TestMismatchedBeginEndIsAParseError(t *testing.T) {
	src := "for i<-1 to n do\nbegin\ns<-s+i\n"
	_, perrs, _ := ParseSource("<test>", src)
	require.NotEmpty(t, perrs)
}

func TestBeginMustOccupyItsOwnLine(t *testing.T) {
	src := "for i<-1 to n do begin\ns<-s+i\nend\n"
	_, perrs, _ := ParseSource("<test>", src)
	require.NotEmpty(t, perrs)
}

func TestFloorAndCeilExpressions(t *testing.T) {
	src := "x<-⌊n/2⌋\ny<-ceil(n/2)\n"
	prog := parseOK(t, src)
	a1 := prog.Items[0].(*ast.Assign)
	_, isFloor := a1.Value.(*ast.FloorExpr)
	require.True(t, isFloor)

	a2 := prog.Items[1].(*ast.Assign)
	_, isCeil := a2.Value.(*ast.CeilExpr)
	require.True(t, isCeil)
}
