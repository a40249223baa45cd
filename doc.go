// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd defines a manager for Reduced Ordered Binary Decision Diagrams
(ROBDD), a data structure used to efficiently represent Boolean functions over
an ordered set of variables, together with the algorithms to build, combine and
query them.

Basics

A Manager holds an ordered list of variables. Variables are declared one at a
time with DeclareVariable and their rank, starting from 1, is their position in
the ordering. Ranks are never reused and variables are never reordered.

Most operations return a Handle; that is a reference to a node of the Manager
that includes a variable rank and the identities of the low and high branch of
the node. We use integers to identify nodes, with the convention that 1
(respectively 0) is the identity of the constant function True (respectively
False). Every node is built by a single reduction function, backed by a unique
table, so that two handles of the same Manager are equal if and only if they
denote the same Boolean function.

Operations

Binary operations are computed by Apply, using Shannon expansion, for any of
the 16 binary operators (see type Operator). And, Or, Xor, Eq and Imp are thin
wrappers over Apply; Not is computed as a Xor with the constant True. The
results of Apply are cached in a lossy operation cache that can be disabled
with the option Memoize(false).

Handles can be queried with CountAnswers, for the number of satisfying
assignments, and CountNodes, for the number of reachable nodes. Walk exposes the
structure of a diagram to renderers, such as the ones in package render.

Errors and memory

Operations return an error when their operands are invalid or come from
another Manager, and the Manager records the first such error (see method
Error). Building a node that breaks the ordering of variables is a programming
error and raises a panic. Nodes are never reclaimed: a Manager grows
monotonically and should be discarded as a whole. A Manager is not safe for
concurrent use; read-only access to existing handles is.

Use of build tags

To unlock logging of some operations, and a dump of the node table in Stats,
compile your executable with the build tag `debug`.
*/
package bdd
