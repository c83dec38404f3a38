/*
Package rgatext implements a replicated collaborative text engine: a
Replicated Growable Array (RGA) keyed by S4-vector timestamps, with
vector-clock causality gating remote-operation application.

Multiple independent sites each hold a local SynchronizedText replica,
apply edits locally without coordination via LocalInsert/LocalDelete, and
exchange the resulting Operation records over a transport this package
does not implement. Once every site has received every operation, every
replica's GetText converges to the same string regardless of delivery
order — the strong eventual consistency property the RGA and causal-
readiness predicate together provide.

This package is deliberately narrow: it has no opinion about how
operations are serialized or shipped between sites, no persistence, and no
tombstone garbage collection. It is meant to be embedded by a host
application that owns those concerns.
*/
package rgatext
