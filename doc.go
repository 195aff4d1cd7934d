/*
Package casestore is the data-access core of the Yardimhane case-management
system: a provider-agnostic CRUD layer over the document collections the
application works with (beneficiaries, donations, aid applications,
scholarships, meetings, messages, users, security settings, audit logs).

The deployment runs two backends side by side during the migration, MongoDB
and DynamoDB, and both must present identically to application code. All
business bookkeeping (audit timestamps, actor attribution, error logging,
response-envelope shaping) therefore lives once, in the Store executor,
above a narrow raw-provider interface:

	transport query → storagemodels.ParamsFromValues → Store → provider → Envelope

Basic Usage:

	prov, _ := mongo.FromEnv(ctx)
	store := casestore.NewStore(prov, casestore.WithLogger(logger))

	params := storagemodels.ParamsFromValues(req.URL.Query())
	env, err := store.List(ctx, "beneficiaries", params)
	if err != nil {
	    // configuration defect: unknown collection or missing provider
	    panic(err)
	}
	if env.Failed() {
	    // provider failure, already logged; *env.Error is user-facing
	}

Typed callers wrap a logical collection:

	beneficiaries := casestore.NewCollection[models.Beneficiary](store, "beneficiaries")
	b, err := beneficiaries.Get(ctx, id) // nil, nil when not found

Store methods return a Go error only for configuration defects (a logical
name missing from the registry, no provider configured); every provider
failure is caught at the executor boundary, logged with operation context,
and reported through the envelope.
*/
package casestore
