// Package experiment drives random-graph experiments: for every
// Configuration of a Plan it generates a Trial Collection, reports the
// averaged metrics, samples a few trials and renders their degree
// distributions.
//
// Output contract (stdout, via WithOutput):
//
//	Average Degree of the network = <mean>
//	Average Clustering Coefficient of the network is = <mean>
//	Average Path Length of the network is = <mean>
//	----------------------------------------------------------------------
//
// Progress ("Running loop on graph number: i", "Analysing graph... i",
// "Plotting degree distribution of graph number: i") goes through the logrus
// logger carried in the context.
package experiment
