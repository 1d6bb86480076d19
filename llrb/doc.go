// Package llrb implement a self-balancing version of binary-tree, called,
// LLRB (Left Leaning Red Black).
//
//   * Index key, value (value is optional).
//   * Each key shall be unique within the index sample-set.
//   * Entries are kept in sort order of their key, with logarithmic
//     order statistics, Rank and Select, on top of the basic reads
//     and writes.
//   * In single-threaded settings, reads and writes are serialized.
//
package llrb
