/*
Package ddb provides a DynamoDB implementation of the Provider interface.

All logical collections share one table. Each record is stored under
PK = SK = "<EntityType>#<id>" with an EntityType discriminator attribute,
and the provider-specific collection ID is the EntityType prefix
("BENEFICIARY", "DONATION", ...).

Query translation:
  - every scan carries an EntityType equality clause, so a query never
    crosses collection boundaries
  - equality filters and the search term add conjunctive clauses
    (contains() on the "name" field for search)
  - skip and limit apply to the filtered, id-sorted result sequence in the
    provider, because a DynamoDB Limit bounds examined items rather than
    matched ones
  - count uses the same filter with Select COUNT, so no items transfer

Writes are conditional: create requires the key to be absent
(attribute_not_exists), update and delete require it to exist, and the
condition failures map to ErrAlreadyExists / ErrNotFound.
*/
package ddb
