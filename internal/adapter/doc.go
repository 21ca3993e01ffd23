/*
Package adapter turns a loosely typed set of caller-bound parameters into a
typed RDS request, executes it and shapes the response into an Envelope.

Each RDS call is described once as an Operation: a field-mapping table
(Params), a result selector (Select), an optional pass-through parameter,
a destructive flag and, for list calls, a Paging description. The Runner
then executes any Operation the same way:

	bind parameters        only names present in the Invocation are copied
	confirm                destructive operations need Force or a Confirmer
	fetch client           lazily, from the ClientSource
	call                   once, or page by page for list operations
	shape                  payload, metadata-only or error Envelope

Binding happens before confirmation so a missing required parameter is
reported without prompting. The client is never touched when binding or
confirmation fails.

# Result selection

Select is either a dot separated field path into the response, SelectAll
for the whole response or SelectNone for a metadata envelope carrying only
the request id. With Settings.PassThru and an operation that names a
PassThru parameter, the payload is the bound value of that parameter.

# Pagination

A list operation whose marker was bound, or whose invocation sets
NoAutoIteration, fetches a single page and returns the next marker in
Envelope.NextMarker. Otherwise pages are drained in order until the service
stops returning a marker. MaxItems stops draining once at least that many
items were collected and shrinks the page size to the remaining count,
bounded by the operation's page size limits, unless the caller bound the
page size.

# Errors

Errors are captured in the Envelope. A failure caused by DNS resolution is
wrapped in a NAME_RESOLUTION error naming the endpoint and region the
client targeted; every other error is passed through unchanged.

Example:

	runner := adapter.NewRunner(clients, adapter.WithConfirmer(confirmer))
	inv := adapter.NewInvocation(map[string]any{
		"SourceDBSnapshotIdentifier": "snap-a",
		"TargetDBSnapshotIdentifier": "snap-b",
	}, adapter.Settings{})
	env := runner.Run(ctx, catalog.CopyDBSnapshot, inv)
	snapshot, err := env.Unwrap()
*/
package adapter
