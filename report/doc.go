// Package report renders solver results as plain text for terminals and logs.
//
// Every writer takes an io.Writer and only reads its inputs; nothing in the
// solver packages calls back into report. Tables are aligned with
// text/tabwriter and marks are coloured with fatih/color, which switches
// itself off when the output is not a terminal (or when color.NoColor is set).
//
//	sol, _ := pb.Solve()
//	report.Summary(os.Stdout, pb, sol)
//	report.Verification(os.Stdout, pb.Verify(sol.Best()))
package report
