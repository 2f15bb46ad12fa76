// Package moneykeeper implements a personal ledger: a registry of named
// accounts, each holding an ordered collection of monetary transactions
// denominated in arbitrary currencies.
//
// The package covers the data model and its consistency machinery:
// transaction validation and unique id assignment, account balance
// invariants under multi-currency transactions, account lifecycle
// operations (create, rename, merge, delete) that preserve money, a
// line-oriented flat-file encoding tolerant of malformed records, and
// currency conversion through a cached rate table refreshed from an
// external quotation source.
//
// Presentation lives in the renderer package, and the mk command in mk/
// exposes the whole thing on the command line.
package moneykeeper
