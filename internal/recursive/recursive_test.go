package recursive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bigoh/internal/parser"
	"bigoh/internal/recursive"
)

func parseOK(t *testing.T, src string) *recursive.Result {
	t.Helper()
	prog, perrs, serrs := parser.ParseSource("<test>", src)
	require.Empty(t, perrs)
	require.Empty(t, serrs)
	res, ok := recursive.AnalyzeProgram(prog)
	require.True(t, ok, "expected a self-calling procedure")
	return res
}

func TestFactorialIsLinearByIterationMethod(t *testing.T) {
	src := "Fact(n)\nbegin\nif (n<=1) then\nbegin\nreturn 1\nend\nelse\nbegin\nreturn n*Fact(n-1)\nend\nend\n"
	res := parseOK(t, src)
	require.Equal(t, recursive.MethodIteration, res.MethodUsed)
	require.Equal(t, "n", res.BigO)
}

func TestFibonacciUsesCharacteristicEquation(t *testing.T) {
	src := "Fib(n)\nbegin\nif (n<=1) then\nbegin\nreturn n\nend\nelse\nbegin\nreturn Fib(n-1)+Fib(n-2)\nend\nend\n"
	res := parseOK(t, src)
	require.Equal(t, recursive.MethodCharacteristic, res.MethodUsed)
	require.Equal(t, "2^n", res.BigO)
}

func TestMergeSortUsesMasterTheorem(t *testing.T) {
	src := "MergeSort(A, lo, hi)\nbegin\nif (lo<hi) then\nbegin\nm<-(lo+hi) div 2\nCALL MergeSort(A, lo, m)\nCALL MergeSort(A, m+1, hi)\nCALL Merge(A, lo, m, hi)\nend\nend\n\nMerge(A, lo, mid, hi)\nbegin\nfor i<-lo to hi do\nbegin\nx<-1\nend\nend\n"
	res := parseOK(t, src)
	require.Equal(t, recursive.MethodMaster, res.MethodUsed)
	require.Equal(t, "n*log(n)", res.BigO)
	require.Contains(t, res.RecurrenceEquation, "2T(n/2)")
	require.Contains(t, res.RecurrenceEquation, "Θ(n)")
}

func TestSingleHalvingCallIsLogarithmicByMasterTheorem(t *testing.T) {
	src := "Pow(n)\nbegin\nif (n<=0) then\nbegin\nreturn 1\nend\nelse\nbegin\nCALL Pow(n div 2)\nend\nend\n"
	res := parseOK(t, src)
	require.Equal(t, recursive.MethodMaster, res.MethodUsed)
	require.Equal(t, "log(n)", res.BigO)
}

func TestNonRecursiveProcedureIsNotAnalyzed(t *testing.T) {
	prog, perrs, serrs := parser.ParseSource("<test>", "Sum(n)\nbegin\nreturn n\nend\n")
	require.Empty(t, perrs)
	require.Empty(t, serrs)
	_, ok := recursive.AnalyzeProgram(prog)
	require.False(t, ok)
}
