/*

Package rsfs is a read-only accessor for a legacy game-client asset cache.

A cache directory holds one monolithic data file (main_file_cache.dat),
addressed in fixed 520-byte sectors, and up to 256 per-category index files
(main_file_cache.idx0 .. idx255). Each index file is a packed array of
6-byte records mapping an entry-id to a (size, first-sector) pair; resolving
an entry means walking the chain of sectors starting at that first sector
until size bytes have been collected.

One index category (Archive, id 0) holds a nested container format: an
archive aggregates many named sub-files, each optionally individually
bzip2-compressed, with an optional outer bzip2 envelope over the whole
archive. Entries are looked up by a 32-bit case-insensitive name hash.

This package never writes to the cache: there is no repacking, no mutation
of on-disk state, and no network surface. Every read returns a fully
materialized []byte.

Information sources:

- Community reverse-engineering of the RuneScape cache format: the on-disk
layout this package implements predates any one canonical spec and has been
independently documented by several open-source cache tools over the years.

- abyssalen/legacy-rsfs, a Rust implementation of the same on-disk format,
used here to resolve ambiguities the distilled design left open.

*/
package rsfs
