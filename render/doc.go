// Package render turns degree histograms into figures and writes them to
// disk through gonum/plot.
//
// A Figure is plain data (title, axis labels, labelled lines) so that the
// experiment driver can be tested against an in-memory Sink; PlotSink is the
// production implementation. PathPolicy decides where each configuration's
// figure goes.
package render
