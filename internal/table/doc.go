// Package table implements the dataframe-like operations the pipeline
// needs on a dretl.Table: building a typed table from CSV records, a full
// outer join on one key column, and exact-duplicate row removal.
//
// All operations return new tables and never mutate their inputs.
package table
