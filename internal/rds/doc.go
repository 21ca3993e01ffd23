/*
Package rds owns the connection to the Amazon RDS management API.

API lists the RDS client methods the operation catalog binds to, so tests
can substitute a fake for *rds.Client. ClientManager loads the AWS
configuration lazily on first use and caches one client per
region/profile pair for the life of the process:

	manager := rds.NewClientManager(cfg.ClientConfig(), logger)
	client, err := manager.API(ctx, "", "")

Retries, credential resolution and endpoint resolution stay inside the
AWS SDK; this package only feeds it configuration. Diagnostics reports the
target endpoint and region for error messages.
*/
package rds
