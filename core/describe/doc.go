// Package describe reads schema listings in the CSV layout produced by Snowflake's
// DESCRIBE TABLE (and anything else with a header containing "name" and "type").
//
// Listings can come from a local file, standard input ("-") or an object in the
// configured storage bucket ("s3://bucket/object"). Only the name and type columns are
// read; every other column of the listing is ignored.
//
// # Usage
//
//	src := describe.NewSource(storageClient)
//	records, err := src.Load(ctx, "prod_schema.my_table.csv")
//	cols := describe.Columns(records)
package describe
