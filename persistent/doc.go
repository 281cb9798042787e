/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.

This package collects structures with such properties: package vector provides an
indexable sequence backed by a bit-partitioned trie, package dict a dictionary with
deterministic enumeration order. Both hand out a new incarnation for every modification;
all incarnations stay valid indefinitely.

Persistent immutable data structures offer structural sharing: if two incarnations are
mostly copies of each other, most of the memory they take up will be shared between them.
Making copies is therefore relatively cheap in terms of space- and time-complexity, and
since shared parts are never mutated, incarnations may be read concurrently without locks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
