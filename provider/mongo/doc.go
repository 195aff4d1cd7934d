/*
Package mongo provides a MongoDB implementation of the Provider interface.

Each logical collection is one MongoDB collection inside a single database.
Records keep their primary key in "_id" on the wire and expose it as "id"
everywhere else.

Query translation:
  - equality filters map one-to-one onto filter document fields
  - the search term becomes a case-insensitive anchored-nowhere regex on
    the "name" field (regex metacharacters are quoted)
  - limit/skip map onto find options, sorted by _id for stable pages
  - list totals come from CountDocuments on the same filter

Upsert is a single FindOneAndUpdate with SetUpsert(true), so the
check-then-insert race of the per-call-site pattern cannot occur here.
*/
package mongo
