package domain

// Problem is a gold collection instance: a graph with a depot at node 0.
// ID identifies the instance in storage and caches; it is opaque to the
// routing core.
type Problem struct {
	ID    string
	Graph *Graph
}
