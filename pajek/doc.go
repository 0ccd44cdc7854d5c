// Package pajek serializes directed weighted networks in the Pajek
// arc-list text format for downstream network analysis tools.
package pajek
