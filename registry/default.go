/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package registry

// Provider names used by the built-in registry. Provider implementations
// report the same names from their Name() methods.
const (
	ProviderMongo    = "mongo"
	ProviderDynamoDB = "dynamodb"
	ProviderMemory   = "memory"
)

// defaultCollections is the full set of logical collections the
// case-management application uses. Mongo keeps the logical name as the
// collection name; DynamoDB uses an entity-type prefix in the shared table;
// the memory provider mirrors the logical names.
var defaultCollections = []Descriptor{
	{Logical: "beneficiaries", ProviderIDs: map[string]string{
		ProviderMongo: "beneficiaries", ProviderDynamoDB: "BENEFICIARY", ProviderMemory: "beneficiaries",
	}},
	{Logical: "donations", ProviderIDs: map[string]string{
		ProviderMongo: "donations", ProviderDynamoDB: "DONATION", ProviderMemory: "donations",
	}},
	{Logical: "aid_applications", ProviderIDs: map[string]string{
		ProviderMongo: "aid_applications", ProviderDynamoDB: "AID_APPLICATION", ProviderMemory: "aid_applications",
	}},
	{Logical: "aid_records", ProviderIDs: map[string]string{
		ProviderMongo: "aid_records", ProviderDynamoDB: "AID_RECORD", ProviderMemory: "aid_records",
	}},
	{Logical: "scholarships", ProviderIDs: map[string]string{
		ProviderMongo: "scholarships", ProviderDynamoDB: "SCHOLARSHIP", ProviderMemory: "scholarships",
	}},
	{Logical: "meetings", ProviderIDs: map[string]string{
		ProviderMongo: "meetings", ProviderDynamoDB: "MEETING", ProviderMemory: "meetings",
	}},
	{Logical: "messages", ProviderIDs: map[string]string{
		ProviderMongo: "messages", ProviderDynamoDB: "MESSAGE", ProviderMemory: "messages",
	}},
	{Logical: "users", ProviderIDs: map[string]string{
		ProviderMongo: "users", ProviderDynamoDB: "USER", ProviderMemory: "users",
	}},
	{Logical: "security_settings", ProviderIDs: map[string]string{
		ProviderMongo: "security_settings", ProviderDynamoDB: "SECURITY_SETTING", ProviderMemory: "security_settings",
	}},
	{Logical: "audit_logs", ProviderIDs: map[string]string{
		ProviderMongo: "audit_logs", ProviderDynamoDB: "AUDIT_LOG", ProviderMemory: "audit_logs",
	}},
}

// Default returns the built-in registry for the case-management collections.
func Default() *Registry {
	r, err := New("yardimhane", defaultCollections)
	if err != nil {
		// The built-in table is fixed at compile time; a construction error
		// here is a programming mistake, not a runtime condition.
		panic(err)
	}
	return r
}
