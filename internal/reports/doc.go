// Package reports builds the standard submission tables from analysis
// datasets: population disposition, baseline characteristics, the
// adverse-event overview, and the adverse-events-by-organ-class hierarchy.
//
// A Builder is created once per report with the treatment-group display
// order; every table it produces pivots its statistics into that column
// order. Tables have no data dependency on one another and BuildAll computes
// them concurrently.
package reports
