/*
Package settings stores schema-light configuration rows (password policy,
session limits, 2FA flags) in the security_settings collection.

Each row is addressed by (category, key) and holds one tagged value:

	{category: "password_policy", key: "min_length", data_type: "number", value: 8}

The tag is the data_type field; Value is the matching Go-side union, and
consumers switch on Value.Type instead of trusting an untyped payload.
Writes go through the store's single upsert primitive, so concurrent first
writes cannot both insert on backends whose upsert is atomic.
*/
package settings
