/*
Package registry maps logical collection names to provider-specific
collection identifiers.

Application code always speaks in logical names ("beneficiaries",
"donations", ...). Each provider stores those collections under its own
identifiers: MongoDB uses per-collection names, DynamoDB uses entity-type
prefixes inside one shared table. The registry is the single translation
point:

	reg := registry.Default()
	id, err := reg.Resolve(registry.ProviderDynamoDB, "beneficiaries")
	// id == "BENEFICIARY"

A Registry is immutable once built; there is no registration method after
construction, which makes it safe for unlimited concurrent readers.
Resolving a name outside the registered set returns ErrUnknownCollection;
callers are expected to treat that as a configuration defect and fail
loudly rather than fall back to a guessed identifier.

Deployments that need a different mapping load one from YAML:

	database: yardimhane
	collections:
	  - logical: beneficiaries
	    providers:
	      mongo: beneficiaries
	      dynamodb: BENEFICIARY
*/
package registry
