// Package types defines the small enumerations shared across polyclip2d's
// packages: the four boolean operations the sweep engine can run, the
// edge-coincidence classification it assigns to overlapping edges, and a
// coarse spatial relationship enum (Relationship).
//
// # Usage
//
// These types carry no geometry of their own; they are the vocabulary the
// sweep package and the root polyclip2d package use to talk about what kind
// of operation is running and what state an edge or a pair of shapes is in.
package types
