package iterative_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bigoh/internal/iterative"
	"bigoh/internal/parser"
)

func analyzeSrc(t *testing.T, src string) *iterative.ProgramCost {
	t.Helper()
	prog, perrs, serrs := parser.ParseSource("<test>", src)
	require.Empty(t, perrs)
	require.Empty(t, serrs)
	return iterative.AnalyzeProgram(prog)
}

func TestLinearLoopIsLinear(t *testing.T) {
	pc := analyzeSrc(t, "s<-0\nfor i<-1 to n do\nbegin\ns<-s+i\nend\n")
	require.Equal(t, "n", pc.BigO)
	require.Len(t, pc.Lines, 3)
}

func TestNestedLoopsAreQuadratic(t *testing.T) {
	src := "for i<-1 to n do\nbegin\nfor j<-1 to n do\nbegin\nx<-1\nend\nend\n"
	pc := analyzeSrc(t, src)
	require.Equal(t, "n^2", pc.BigO)
}

func TestHalvingWhileIsLogarithmic(t *testing.T) {
	src := "i<-n\nwhile (i>1) do\nbegin\ni<-i div 2\nend\n"
	pc := analyzeSrc(t, src)
	require.Equal(t, "log(n)", pc.BigO)
}

func TestLinearDecrementWhileIsLinear(t *testing.T) {
	src := "i<-n\nwhile (i>0) do\nbegin\ni<-i-1\nend\n"
	pc := analyzeSrc(t, src)
	require.Equal(t, "n", pc.BigO)
}

func TestIfBestNeverExceedsWorst(t *testing.T) {
	src := "if (n>0) then\nbegin\nfor i<-1 to n do\nbegin\nx<-1\nend\nend\nelse\nbegin\ny<-1\nend\n"
	pc := analyzeSrc(t, src)
	require.Equal(t, "n", pc.BigO)
	require.Equal(t, "1", pc.BigOmega)
}

func TestConstantProgramIsConstant(t *testing.T) {
	pc := analyzeSrc(t, "x<-1\ny<-2\n")
	require.Equal(t, "1", pc.BigO)
}

func TestExecutionTraceDefaultsToFiveForLinearLoop(t *testing.T) {
	pc := analyzeSrc(t, "for i<-1 to n do\nbegin\nx<-1\nend\n")
	require.NotNil(t, pc.ExecutionTrace)
	require.Equal(t, 5, pc.ExecutionTrace.TotalIterations)
}

func TestExecutionTraceSimulatesHalvingFromSixteen(t *testing.T) {
	src := "i<-n\nwhile (i>1) do\nbegin\ni<-i div 2\nend\n"
	pc := analyzeSrc(t, src)
	require.NotNil(t, pc.ExecutionTrace)
	// Simulated from a concrete n=16 (spec.md §4.4 halving-pattern default);
	// halving 16 down past 1 takes ceil(log2(16))=4 iterations.
	require.Equal(t, 4, pc.ExecutionTrace.TotalIterations)
	require.Equal(t, 16, pc.ExecutionTrace.Steps[0].Variables["n"])
}

func TestStrongBoundsOmittedForLogarithmic(t *testing.T) {
	src := "i<-n\nwhile (i>1) do\nbegin\ni<-i div 2\nend\n"
	pc := analyzeSrc(t, src)
	require.Nil(t, pc.StrongBounds)
}

func TestUnrecognizedWhilePatternFallsBackToSymAndNotes(t *testing.T) {
	src := "while (x>0) do\nbegin\ny<-y+1\nend\n"
	pc := analyzeSrc(t, src)
	require.NotEmpty(t, pc.Notes)
}
