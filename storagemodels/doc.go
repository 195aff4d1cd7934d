/*
Package storagemodels defines the shared data shapes of the casestore
data-access layer.

Record is the schema-light document type exchanged with providers: a
string-keyed map with snake_case field names and ISO-8601 string timestamps.

QueryParams is the normalized query shape produced from transport input:

	params := storagemodels.ParamsFromValues(req.URL.Query())
	// limit/skip/page/search recognized, everything else an equality filter

Each provider translates QueryParams into its own native filter expressions;
this package never touches the network or a database.
*/
package storagemodels
