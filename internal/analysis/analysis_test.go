package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bigoh/internal/analysis"
)

// These programs are spec.md §8's end-to-end acceptance scenarios,
// reformatted so every 'begin'/'end' occupies its own source line (the
// grammar's layout invariant, spec.md §3/§4.1).

// The top level of a program is an implicit sequence of statements, not a
// wrapped begin/end block (spec.md §4.1 "implicit main program") — only
// each compound statement's own body needs begin/end.

const scenario1 = `
s<-0
for i<-1 to n do
begin
s<-s+i
end
`

const scenario2 = `
for i<-1 to n do
begin
for j<-1 to n do
begin
x<-1
end
end
`

const scenario3 = `
i<-n
while (i>1) do
begin
i<-i div 2
end
`

const scenario4 = `
Fact(n)
begin
if (n<=1) then
begin
return 1
end
else
begin
return n*Fact(n-1)
end
end
`

const scenario5 = `
Fib(n)
begin
if (n<=1) then
begin
return n
end
else
begin
return Fib(n-1)+Fib(n-2)
end
end
`

const scenario6 = `
MergeSort(A, lo, hi)
begin
if (lo<hi) then
begin
m<-(lo+hi) div 2
CALL MergeSort(A, lo, m)
CALL MergeSort(A, m+1, hi)
CALL Merge(A, lo, m, hi)
end
end

Merge(A, lo, mid, hi)
begin
for i<-lo to hi do
begin
x<-1
end
end
`

func mustAnalyze(t *testing.T, source string) *analysis.Result {
	t.Helper()
	res, perrs, serrs := analysis.AnalyzeFull("<test>", source, analysis.DefaultOptions())
	require.Empty(t, perrs, "parse errors")
	require.Empty(t, serrs, "scan errors")
	require.NotNil(t, res)
	return res
}

func TestScenario1SimpleLoopIsLinear(t *testing.T) {
	res := mustAnalyze(t, scenario1)
	require.Equal(t, "n", res.BigO)
	require.Len(t, res.Lines, 3)
	require.NotNil(t, res.ExecutionTrace)
	require.Equal(t, 5, res.ExecutionTrace.TotalIterations)
	require.NotNil(t, res.StrongBounds)
	require.Equal(t, "n", res.StrongBounds.DominantTerm)
}

func TestScenario2NestedLoopIsQuadratic(t *testing.T) {
	res := mustAnalyze(t, scenario2)
	require.Equal(t, "n^2", res.BigO)
	require.NotNil(t, res.ExecutionTrace)
	require.Equal(t, 25, res.ExecutionTrace.TotalIterations)
	require.NotNil(t, res.StrongBounds)
	require.Equal(t, "n^2", res.StrongBounds.DominantTerm)
}

func TestScenario3HalvingWhileIsLogarithmic(t *testing.T) {
	res := mustAnalyze(t, scenario3)
	require.Equal(t, "log(n)", res.BigO)
}

func TestScenario4LinearRecursionIsLinear(t *testing.T) {
	res := mustAnalyze(t, scenario4)
	require.Equal(t, "recursive", res.AlgorithmKind)
	require.Equal(t, "n", res.BigO)
	require.Equal(t, "iteration_method", res.MethodUsed)
}

func TestScenario5FibonacciIsExponential(t *testing.T) {
	res := mustAnalyze(t, scenario5)
	require.Equal(t, "recursive", res.AlgorithmKind)
	require.Equal(t, "2^n", res.BigO)
	require.Equal(t, "characteristic_equation", res.MethodUsed)
}

func TestScenario6MergeSortIsLinearithmic(t *testing.T) {
	res := mustAnalyze(t, scenario6)
	require.Equal(t, "recursive", res.AlgorithmKind)
	require.Equal(t, "n*log(n)", res.BigO)
	require.Equal(t, "master_theorem", res.MethodUsed)
	require.Contains(t, res.RecurrenceEquation, "2T(n/2)")
	require.Contains(t, res.RecurrenceEquation, "+ Θ(n)")
	require.Nil(t, res.StrongBounds)
}

func TestInvariantIfBestNeverExceedsWorst(t *testing.T) {
	res := mustAnalyze(t, scenario4)
	require.Equal(t, "n", res.BigO)
	require.Equal(t, "n", res.BigOmega)

	// Then-branch is a loop, else-branch a single assignment: the best
	// case takes the cheap branch while the worst case takes the loop.
	res = mustAnalyze(t, "if (n>0) then\nbegin\nfor i<-1 to n do\nbegin\nx<-1\nend\nend\nelse\nbegin\ny<-1\nend\n")
	require.Equal(t, "n", res.BigO)
	require.Equal(t, "1", res.BigOmega)
}

func TestAnalyzeRejectsExcessiveASTDepth(t *testing.T) {
	prog, perrs, serrs := analysis.Parse("<test>", scenario2)
	require.Empty(t, perrs)
	require.Empty(t, serrs)

	res, err := analysis.Analyze(prog, analysis.Options{MaxASTDepth: 1, MaxSimplifySteps: 10000})
	require.NoError(t, err)
	require.Equal(t, "unknown", res.BigO)
	require.NotEmpty(t, res.Notes)
}
