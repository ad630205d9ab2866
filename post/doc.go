/*
Package post simulates the evolution of a fixed two-symbol tag system.
Starting from an initial string of symbols, every step deletes the three
leading symbols and appends a production chosen by the first deleted symbol:
0 appends 00, 1 appends 1101. A string shorter than three symbols halts.

The package defines two interchangeable representations of the evolving
string behind the System interface. BitString packs the symbols into 64-bit
words and collapses several steps into a single lookup of a precomputed
transition table; it is the representation to use. BoolList keeps one symbol
per slice element and exists as a reference for testing.

Systems are created exclusively from a compressed initial string in which
each boolean expands to the three-symbol block [b, 0, 0].

A System is not safe for concurrent use. Every instance is owned by a single
caller; Clone produces independent copies for drivers that need to advance
two copies at different rates and compare them with Equal.
*/
package post
