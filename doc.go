// Package aoc25 is a toolkit of data structures and algorithms for
// programming-puzzle solving — the kind of building blocks Advent of Code
// asks for year after year.
//
// What's inside?
//
//	A small, deterministic, zero-dependency library:
//		• Core primitives: an undirected value-carrying graph, union-find,
//		  a generic priority queue, bit vectors and 2D grids
//		• Geometry: vectors, polygons, point-in-polygon
//		• Traversals & paths: BFS, DFS, Dijkstra, A*
//		• Minimum spanning trees: Prim, Kruskal
//		• Strings & sequences: Damerau–Levenshtein, longest common subsequence
//		• Numbers: deterministic primality, sieves, factorization, FFT
//		• Clustering & coloring: k-means++, greedy/DSATUR vertex coloring
//		• Probabilistic: Bloom filters with tunable false-positive rates
//
// Everything is organized under flat subpackages, one concern each:
//
//	bitvec/    — fixed-length bit vectors on machine words
//	bloom/     — Bloom filters layered on bitvec
//	coloring/  — greedy and DSATUR vertex coloring, bipartite checks
//	core/      — the undirected Graph every graph algorithm consumes
//	editdist/  — Levenshtein, OSA and unrestricted Damerau–Levenshtein
//	fft/       — radix-2 FFT, inverse transform, convolution
//	geom/      — Vec2, polygons, containment tests
//	grid/      — generic 2D grids, components, graph conversion
//	kmeans/    — k-means++ clustering with deterministic seeding
//	lcs/       — longest common subsequence over any comparable slice
//	mst/       — Kruskal and Prim spanning trees
//	pqueue/    — generic min-priority queue with decrease-key
//	primes/    — Miller–Rabin, sieve of Eratosthenes, Pollard's rho
//	search/    — BFS/DFS/Dijkstra/A* over core graphs
//	unionfind/ — disjoint sets with path compression and union by rank
//
// Determinism is a design rule: same inputs (and, where randomness is
// involved, same seed) always produce the same outputs, so puzzle answers
// stay reproducible. No package logs and no exported API panics on bad
// input — sentinel errors everywhere.
package aoc25
