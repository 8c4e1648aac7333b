package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bigoh/internal/ast"
	"bigoh/internal/parser"
	"bigoh/internal/semantic"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, perrs, serrs := parser.ParseSource("<test>", src)
	require.Empty(t, perrs)
	require.Empty(t, serrs)
	return prog
}

func TestFillsDefaultForStep(t *testing.T) {
	prog := parseOK(t, "for i<-1 to n do\nbegin\ns<-s+i\nend\n")
	prog, _ = semantic.Analyze(prog)
	f := prog.Items[0].(*ast.For)
	require.NotNil(t, f.Step)
	numExpr := f.Step.(*ast.NumExpr)
	require.Equal(t, "1", numExpr.Text)
}

func TestDoesNotOverrideExplicitStep(t *testing.T) {
	prog := parseOK(t, "for i<-1 to n step 2 do\nbegin\ns<-s+i\nend\n")
	prog, _ = semantic.Analyze(prog)
	f := prog.Items[0].(*ast.For)
	numExpr := f.Step.(*ast.NumExpr)
	require.Equal(t, "2", numExpr.Text)
}

func TestFlagsEmptyForBody(t *testing.T) {
	prog := parseOK(t, "for i<-1 to n do\nbegin\nend\n")
	_, issues := semantic.Analyze(prog)
	found := false
	for _, iss := range issues {
		if iss.Message == "for-loop body is empty" {
			found = true
		}
	}
	require.True(t, found)
}

func TestIfAverageCaseIssueIsRecorded(t *testing.T) {
	prog := parseOK(t, "if (n<=1) then\nbegin\nreturn 1\nend\n")
	_, issues := semantic.Analyze(prog)
	found := false
	for _, iss := range issues {
		require.Equal(t, semantic.SeverityNote, iss.Severity)
		if iss.Message != "" {
			found = true
		}
	}
	require.True(t, found)
}

func TestNonBooleanWhileConditionIsWarned(t *testing.T) {
	prog := parseOK(t, "while (n) do\nbegin\nn<-n-1\nend\n")
	_, issues := semantic.Analyze(prog)
	found := false
	for _, iss := range issues {
		if iss.Severity == semantic.SeverityWarning {
			found = true
		}
	}
	require.True(t, found)
}

func TestRelationalAndLogicalConditionsAreAccepted(t *testing.T) {
	prog := parseOK(t, "while (n>0 and n<10) do\nbegin\nn<-n-1\nend\n")
	_, issues := semantic.Analyze(prog)
	for _, iss := range issues {
		require.NotContains(t, iss.Message, "not surface-level boolean")
	}
}

func TestAnalyzeDoesNotMutateBodyStatements(t *testing.T) {
	prog := parseOK(t, "for i<-1 to n do\nbegin\ns<-s+i\nend\n")
	before := len(prog.Items[0].(*ast.For).Body.Stmts)
	prog, _ = semantic.Analyze(prog)
	after := len(prog.Items[0].(*ast.For).Body.Stmts)
	require.Equal(t, before, after)
}
